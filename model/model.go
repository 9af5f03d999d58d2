package model

import (
	"fmt"
	"time"
)

// IconRef names a glyph in the icon set. Rendering surfaces resolve it to
// their own representation.
type IconRef string

const (
	IconSparkles    IconRef = "sparkles"
	IconCalendar    IconRef = "calendar"
	IconMapPin      IconRef = "map-pin"
	IconMail        IconRef = "mail"
	IconInstagram   IconRef = "instagram"
	IconTwitter     IconRef = "twitter"
	IconFacebook    IconRef = "facebook"
	IconCamera      IconRef = "camera"
	IconShieldCheck IconRef = "shield-check"
	IconArrowUpLeft IconRef = "arrow-up-left"
	IconClose       IconRef = "x"
)

type LinkEntry struct {
	Destination string
	Icon        IconRef
	Title       string
	// Subtitle is optional, empty means absent.
	Subtitle    string
	RevealDelay time.Duration
}

type SocialEntry struct {
	Destination string
	Icon        IconRef
	Label       string
	RevealDelay time.Duration
}

// ModalID identifies one of the informational dialogs.
type ModalID int

const (
	ModalAbout ModalID = iota
	ModalPrivacy
	ModalSecurity
)

// ModalIDs lists every modal in footer order.
var ModalIDs = []ModalID{ModalAbout, ModalPrivacy, ModalSecurity}

func (m ModalID) Valid() bool {
	return m >= ModalAbout && m <= ModalSecurity
}

// String returns the slug used in URLs and logs.
func (m ModalID) String() string {
	switch m {
	case ModalAbout:
		return "about"
	case ModalPrivacy:
		return "privacy"
	case ModalSecurity:
		return "security"
	default:
		return fmt.Sprintf("ModalID(%d)", int(m))
	}
}

// ParseModalID is the inverse of String.
func ParseModalID(s string) (ModalID, bool) {
	for _, id := range ModalIDs {
		if id.String() == s {
			return id, true
		}
	}

	return 0, false
}

type BlockKind int

const (
	BlockParagraph BlockKind = iota
	BlockHeading
	BlockList
)

// Block is one piece of static modal prose.
type Block struct {
	Kind  BlockKind
	Text  string
	Items []string
}

type ModalContent struct {
	ID     ModalID
	Title  string
	Blocks []Block
}

// Hero holds the copy shown above the link list.
type Hero struct {
	Brand         string
	Badge         string
	Intro         string
	LogoAlt       string
	BackgroundAlt string
	Copyright     string
	CloseLabel    string
}

// Trigger is a footer control that opens a modal.
type Trigger struct {
	Modal ModalID
	Label string
}
