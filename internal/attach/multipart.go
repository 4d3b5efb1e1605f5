package attach

import (
	"io"
	"mime/multipart"
	"net/http"
)

const maxUploadMemory = 32 << 20 // 32 MiB buffered before spilling to disk

// FilesFromRequest reads every uploaded file under the given form field.
// Returns nil when the request is not multipart, so JSON-only creates pass
// straight through.
func FilesFromRequest(r *http.Request, field string) ([]File, error) {
	if r.MultipartForm == nil {
		if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
			if err == http.ErrNotMultipart {
				return nil, nil
			}
			return nil, err
		}
	}

	headers := r.MultipartForm.File[field]
	files := make([]File, 0, len(headers))
	for _, header := range headers {
		f, err := readFile(header)
		if err != nil {
			return nil, err
		}
		files = append(files, f)
	}
	return files, nil
}

func readFile(header *multipart.FileHeader) (File, error) {
	src, err := header.Open()
	if err != nil {
		return File{}, err
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return File{}, err
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	return File{Name: header.Filename, ContentType: contentType, Data: data}, nil
}
