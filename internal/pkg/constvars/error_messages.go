package constvars

// Client messages are the only diagnostics the caller receives, keep them readable.
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientAccountDisabled               = "your account was not found or has been disabled"
	ErrClientInvalidImageFormat            = "unsupported file format, allowed extensions: PNG, JPG, JPEG, PDF"
	ErrClientRefertoNotFound               = "no referto found for %s: %s"
	ErrClientRefertoForbidden              = "you are not allowed to %s this referto. Only the doctor who created it (%s) or an administrator can do that"
	ErrClientUserNotFound                  = "user not found"
	ErrClientRequestBodyTooLarge           = "request body exceeds the %dMB limit"
)

const (
	ErrDevInvalidInput             = "invalid input"
	ErrDevCannotParseJSON          = "cannot parse JSON into struct or other data types"
	ErrDevCannotParseMultipartForm = "cannot parse multipart form body"
	ErrDevValidationFailed         = "request validation failed"
	ErrDevURLParamIDValidation     = "URL parameter %s is not a valid integer"
	ErrDevInvalidExamType          = "invalid exam type %q, allowed values: TAC, Radiografia, Ecografia, Risonanza, Esami_Laboratorio"
	ErrDevServerDeadlineExceeded   = "request processing exceeded its deadline"

	ErrDevAuthTokenMissing          = "authorization token is missing"
	ErrDevAuthTokenInvalidOrExpired = "authorization token is invalid or expired"
	ErrDevAccountNotFoundOrDisabled = "account %s not found or disabled"
	ErrDevRefertoForbidden          = "caller %s may not %s referto owned by %s"
	ErrDevAdminRoleRequired         = "caller %s requires the ADMIN role"
	ErrDevRequestBodyTooLarge       = "request body larger than %d megabytes"

	ErrDevRefertoNotFoundByID = "referto not found for id: %d"
	ErrDevRefertoNotFoundBy   = "no referto found for %s: %s"
	ErrDevUserNotExists       = "user not exists in our system"

	ErrDevDBFailedToFindData       = "failed to find data in database"
	ErrDevDBFailedToInsertData     = "failed to insert data into database"
	ErrDevDBFailedToUpdateData     = "failed to update data in database"
	ErrDevDBFailedToDeleteData     = "failed to delete data from database"
	ErrDevDBFailedToIterateDataset = "failed to iterate dataset rows"

	ErrDevMinioFailedToCreateObject = "failed to create object in bucket %s"
	ErrDevMinioFailedToGetObject    = "failed to get object from bucket %s"
	ErrDevMinioFailedToRemoveObject = "failed to remove object from bucket %s"
	ErrDevMinioObjectEmpty          = "object %s is empty or does not exist"

	ErrDevPdfGenerate = "failed to generate referto PDF"
)
