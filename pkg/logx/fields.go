package logx

const (
	FieldAppName         = "app-name"
	FieldAppVersion      = "app-version"
	FieldCycle           = "cycle"
	FieldDurationMs      = "duration-ms"
	FieldError           = "error"
	FieldHandle          = "handle"
	FieldHTTPMethod      = "http-method"
	FieldHTTPRequest     = "http-request"
	FieldHTTPResponse    = "http-response"
	FieldIP              = "ip"
	FieldItemID          = "item-id"
	FieldItemName        = "item-name"
	FieldLevel           = "level"
	FieldOutcome         = "outcome"
	FieldPage            = "page"
	FieldPrice           = "price"
	FieldReferencePrice  = "reference-price"
	FieldRequestBody     = "request-body"
	FieldRequestID       = "request-id"
	FieldResponseBody    = "response-body"
	FieldResponseHeaders = "response-headers"
	FieldResponseStatus  = "response-status"
	FieldStack           = "stack"
	FieldState           = "state"
	FieldThreshold       = "threshold"
	FieldTraceID         = "trace-id"
	FieldURL             = "url"
)
