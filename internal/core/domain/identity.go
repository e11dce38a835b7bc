package domain

// Identity is the authenticated caller as established by the auth middleware.
type Identity struct {
	UserID int64
	Admin  bool
}

// CanMutate reports whether the caller may change or delete a resource whose
// owning-id field is ownerID. Admins bypass the ownership check.
func (i Identity) CanMutate(ownerID int64) bool {
	return i.Admin || i.UserID == ownerID
}
