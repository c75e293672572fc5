package services

import "fmt"

// CheckOwner allows the operation only when the actor is the resource owner.
// Callers decide whether a denial surfaces as 403 or as 404 for hidden
// resources.
func CheckOwner(ownerID, actorID uint) error {
	if ownerID != actorID {
		return fmt.Errorf("%w: access denied", ErrPermissionDenied)
	}
	return nil
}
