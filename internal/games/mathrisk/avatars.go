package mathrisk

// Avatar selects the sprite drawn for the player. Purely cosmetic; the
// collision box comes from the player config regardless of sprite.
type Avatar int

const (
	AvatarClassic Avatar = iota
	AvatarRobot
	AvatarCat
)

// Avatars lists the selectable avatars in menu order.
var Avatars = []Avatar{AvatarClassic, AvatarRobot, AvatarCat}

// Title returns the avatar's display name.
func (a Avatar) Title() string {
	switch a {
	case AvatarRobot:
		return "Robot"
	case AvatarCat:
		return "Cat"
	default:
		return "Classic"
	}
}

// String returns the avatar's storage key.
func (a Avatar) String() string {
	switch a {
	case AvatarRobot:
		return "robot"
	case AvatarCat:
		return "cat"
	default:
		return "classic"
	}
}

// ParseAvatar maps a storage key back to an Avatar, defaulting to Classic.
func ParseAvatar(s string) Avatar {
	switch s {
	case "robot":
		return AvatarRobot
	case "cat":
		return AvatarCat
	default:
		return AvatarClassic
	}
}

// Sprite returns the avatar's rows, widest first. Sprites are at most as
// wide as the default player hitbox so they stay inside the collision box.
func (a Avatar) Sprite() []string {
	switch a {
	case AvatarRobot:
		return []string{
			"[o_o]",
			"/| |\\",
		}
	case AvatarCat:
		return []string{
			"/\\_/\\",
			"(=ω=)",
		}
	default:
		return []string{
			"(o_o)",
			"/| |\\",
		}
	}
}
