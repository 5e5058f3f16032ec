package application

// SubmitApplicationResponse - POST /apply
type SubmitApplicationResponse struct {
	Message string `json:"message"`
}

// Addresses are the fixed sender and recipient of notification emails
type Addresses struct {
	FromName  string
	FromEmail string
	ToEmail   string
}
