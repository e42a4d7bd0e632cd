package requestresponse

// UserCreateRequest : тело запроса на регистрацию
type UserCreateRequest struct {
	Email    string `json:"email" example:"user1@example.com"`
	Password string `json:"password" example:"P@ssw0rd123"`
	Name     string `json:"name" example:"Иван"`
}

// UserData : публичные данные пользователя
type UserData struct {
	UUID  string `json:"uuid" example:"b6a1e1c4-4b1d-4f1e-8b29-1234567890ab"`
	Email string `json:"email" example:"user1@example.com"`
	Name  string `json:"name" example:"Иван"`
}
