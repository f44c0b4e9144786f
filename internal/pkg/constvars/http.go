package constvars

const (
	MIMETextPlain       = "text/plain"
	MIMEApplicationJSON = "application/json"
	MIMEApplicationPDF  = "application/pdf"
	MIMEImagePNG        = "image/png"
	MIMEImageJPEG       = "image/jpeg"
	MIMEOctetStream     = "application/octet-stream"
	MIMEMultipartForm   = "multipart/form-data"
)

const (
	StatusOK        = 200
	StatusCreated   = 201
	StatusNoContent = 204

	StatusBadRequest            = 400
	StatusUnauthorized          = 401
	StatusForbidden             = 403
	StatusNotFound              = 404
	StatusRequestEntityTooLarge = 413

	StatusInternalServerError = 500
	StatusGatewayTimeout      = 504
)

const (
	HeaderContentType        = "Content-Type"
	HeaderContentDisposition = "Content-Disposition"
	HeaderAuthorization      = "Authorization"
	HeaderXRequestID         = "X-Request-ID"
)
