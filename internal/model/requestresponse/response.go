package requestresponse

// Статусы ответа API.
const (
	StatusSuccess = "SUCCESS"
	StatusError   = "ERROR"
)

// Коды успешных ответов.
const (
	CodeSuccessDefault = "SUCCESS_DEFAULT"
	CodeSuccessCreated = "SUCCESS_CREATED"
)

// ApiResponse : единый конверт ответа на каждый вызов API.
// swagger:model
type ApiResponse struct {
	// SUCCESS или ERROR
	// example: SUCCESS
	Status string `json:"status"`

	// Машинный код результата
	// example: SUCCESS_DEFAULT
	Code string `json:"code"`

	// Полезная нагрузка или null
	Data interface{} `json:"data"`
}

func Success(code string, data interface{}) ApiResponse {
	return ApiResponse{Status: StatusSuccess, Code: code, Data: data}
}

func Fail(code string, data interface{}) ApiResponse {
	return ApiResponse{Status: StatusError, Code: code, Data: data}
}
