package models

// ObjectKind identifies the category of a stored vault object. It is used
// both as the discriminator column of the local cipher cache and as the
// {object} segment of the HTTP API.
type ObjectKind string

const (
	KindItem         ObjectKind = "item"
	KindFolder       ObjectKind = "folder"
	KindCollection   ObjectKind = "collection"
	KindOrganization ObjectKind = "organization"
	KindSend         ObjectKind = "send"
)

// ParseObjectKind maps an {object} URL segment (singular or plural, as used
// by the list routes) to its ObjectKind. The second return value reports
// whether the segment named a known kind.
func ParseObjectKind(segment string) (ObjectKind, bool) {
	switch segment {
	case "item", "items":
		return KindItem, true
	case "folder", "folders":
		return KindFolder, true
	case "collection", "collections":
		return KindCollection, true
	case "organization", "organizations":
		return KindOrganization, true
	case "send", "sends":
		return KindSend, true
	default:
		return "", false
	}
}

// ItemType is the semantic type of a vault item.
type ItemType int

const (
	ItemTypeLogin      ItemType = 1
	ItemTypeSecureNote ItemType = 2
	ItemTypeCard       ItemType = 3
	ItemTypeIdentity   ItemType = 4
)
