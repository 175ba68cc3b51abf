package flower

type ErrResponse struct {
	Code    int    `json:"error_code"`
	Message string `json:"error_message"`
}

func (e ErrResponse) Error() string {
	return e.Message
}

var ErrResponseFlowerNotFound = ErrResponse{101, "flower not found"}
var ErrResponseEntryInvalidJSON = ErrResponse{102, "invalid json request."}
var ErrResponseIdInvalidFormat = ErrResponse{103, "the endpoint is not a valid format ID. Must be /api/flowers/{uuid}"}
var ErrResponseInvalidName = ErrResponse{104, "flower name must be a non-blank string of at most 100 characters"}
var ErrResponseInvalidColor = ErrResponse{105, "flower color must be a non-blank string of at most 50 characters"}
var ErrResponseNegativePrice = ErrResponse{106, "flower price must be non-negative"}
var ErrResponseNegativeStock = ErrResponse{107, "flower stock must be non-negative"}
var ErrResponseInsufficientStock = ErrResponse{108, "insufficient stock"}
var ErrResponseQueryPageInvalid = ErrResponse{109, "query parameter 'page' must be an int starting in 1. 'per_page' must be an int between 1 and 100."}
var ErrResponseQueryPageOutOfRange = ErrResponse{110, "page out of range."}
var ErrResponseFromRepository = ErrResponse{111, "error from repository: "}
var ErrResponseRequestTimeout = ErrResponse{112, "context deadline exceeded"}
var ErrResponseFlowerAlreadyExists = ErrResponse{113, "a flower with this id already exists"}
var ErrResponseStockEntryBlankFields = ErrResponse{114, "field stock_delta must be filled with a non-zero int."}
