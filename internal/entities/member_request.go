package entities

type MemberRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}
