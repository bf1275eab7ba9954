package dto

type RegisterRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	IsExecutor bool   `json:"is_executor"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type CreateTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Price       int64  `json:"price"`
}

type RespondRequest struct {
	Price   int64  `json:"price"`
	Comment string `json:"comment"`
}

type CompleteRequest struct {
	Value   int    `json:"value"`
	Comment string `json:"comment"`
	Accept  bool   `json:"accept"`
}
