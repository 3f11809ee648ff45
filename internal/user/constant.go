package user

const (
	MinPasswordLength = 6
	MinUsernameLength = 3
)

// Avatar catalog shown on the profile page. IDs are stored on the user row.
type Avatar struct {
	ID   string
	Name string
}

var Avatars = []Avatar{
	{ID: "avatar-1", Name: "Chrono Tortoise"},
	{ID: "avatar-2", Name: "Stratos Eagle"},
	{ID: "avatar-3", Name: "Titan Bear"},
	{ID: "avatar-4", Name: "Echo Fox"},
	{ID: "avatar-5", Name: "Blaze Tiger"},
	{ID: "avatar-6", Name: "Vortex Wolf"},
	{ID: "avatar-7", Name: "Aegis Owl"},
}

// ValidAvatar reports whether id belongs to the catalog.
func ValidAvatar(id string) bool {
	for _, a := range Avatars {
		if a.ID == id {
			return true
		}
	}
	return false
}
