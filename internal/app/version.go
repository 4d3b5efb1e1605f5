package app

// Version is stamped into logs and the service info at startup.
const Version = "1.0.0"
