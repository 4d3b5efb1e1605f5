package attach_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Parnets19/Vidyaastra-Render-sub001/internal/attach"
)

func multipartRequest(t *testing.T, field string, names ...string) *http.Request {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	for _, name := range names {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", `form-data; name="`+field+`"; filename="`+name+`"`)
		header.Set("Content-Type", "image/jpeg")
		part, err := writer.CreatePart(header)
		require.NoError(t, err)
		_, err = part.Write([]byte("content of " + name))
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/albums", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func TestFilesFromRequest(t *testing.T) {
	t.Run("reads every file under the field", func(t *testing.T) {
		req := multipartRequest(t, "images", "one.jpg", "two.jpg")

		files, err := attach.FilesFromRequest(req, "images")
		require.NoError(t, err)
		require.Len(t, files, 2)
		assert.Equal(t, "one.jpg", files[0].Name)
		assert.Equal(t, "image/jpeg", files[0].ContentType)
		assert.Equal(t, []byte("content of one.jpg"), files[0].Data)
	})

	t.Run("other field names yield nothing", func(t *testing.T) {
		req := multipartRequest(t, "documents", "one.pdf")

		files, err := attach.FilesFromRequest(req, "images")
		require.NoError(t, err)
		assert.Empty(t, files)
	})

	t.Run("non-multipart requests pass through", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/albums", strings.NewReader(`{"title":"x"}`))
		req.Header.Set("Content-Type", "application/json")

		files, err := attach.FilesFromRequest(req, "images")
		require.NoError(t, err)
		assert.Nil(t, files)
	})
}
