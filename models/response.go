package models

type APIResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

type ErrorResponse struct {
	Message string `json:"message"`
}

type InsertResponse struct {
	Success bool   `json:"success"`
	ID      string `json:"id"`
}

type UpdateResponse struct {
	Success       bool  `json:"success"`
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
}

type DeleteResponse struct {
	Success      bool  `json:"success"`
	DeletedCount int64 `json:"deletedCount"`
}

type LoginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
	User    User   `json:"user"`
}

type UserLookupResponse struct {
	Exists bool  `json:"exists"`
	User   *User `json:"user,omitempty"`
}

type UserListResponse struct {
	Users      []User `json:"users"`
	TotalPages int64  `json:"totalPages"`
	TotalUsers int64  `json:"totalUsers"`
}

type RequestListResponse struct {
	Requests      []DonationRequest `json:"requests"`
	TotalPages    int64             `json:"totalPages"`
	TotalRequests int64             `json:"totalRequests"`
}
