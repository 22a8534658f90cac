package service

import "github.com/scholarhub/backend/internal/qna/domain"

// Policy is the owner-or-admin authorization rule shared by the question
// and answer lifecycles. Authentication happens before it: by the time a
// Policy check runs, user is a verified identity.
type Policy struct{}

// CanModify grants mutation of title/content to the resource owner only.
func (Policy) CanModify(user domain.User, ownerID string) bool {
	return user.ID == ownerID
}

// CanDelete grants deletion to the resource owner or any admin.
func (Policy) CanDelete(user domain.User, ownerID string) bool {
	return user.Admin || user.ID == ownerID
}
