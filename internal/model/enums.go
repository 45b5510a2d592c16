package model

import "fmt"

// Gender restricts which candidates a center accepts.
type Gender string

const (
	GenderMale   Gender = "MALE"
	GenderFemale Gender = "FEMALE"
	GenderBoth   Gender = "BOTH"
)

// ParseGender converts a raw string into a Gender, rejecting values
// outside the closed set.
func ParseGender(s string) (Gender, error) {
	switch Gender(s) {
	case GenderMale:
		return GenderMale, nil
	case GenderFemale:
		return GenderFemale, nil
	case GenderBoth:
		return GenderBoth, nil
	}
	return "", fmt.Errorf("unknown gender %q", s)
}

// Valid reports whether the gender is one of the defined constants.
func (g Gender) Valid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderBoth:
		return true
	}
	return false
}

// Zone is the fixed set of regions a center can be located in.
type Zone string

const (
	ZoneNorth  Zone = "NORTH"
	ZoneSouth  Zone = "SOUTH"
	ZoneEast   Zone = "EAST"
	ZoneWest   Zone = "WEST"
	ZoneCenter Zone = "CENTER"
)

// ParseZone converts a raw string into a Zone, rejecting values
// outside the closed set.
func ParseZone(s string) (Zone, error) {
	switch Zone(s) {
	case ZoneNorth:
		return ZoneNorth, nil
	case ZoneSouth:
		return ZoneSouth, nil
	case ZoneEast:
		return ZoneEast, nil
	case ZoneWest:
		return ZoneWest, nil
	case ZoneCenter:
		return ZoneCenter, nil
	}
	return "", fmt.Errorf("unknown zone %q", s)
}

// Valid reports whether the zone is one of the defined constants.
func (z Zone) Valid() bool {
	switch z {
	case ZoneNorth, ZoneSouth, ZoneEast, ZoneWest, ZoneCenter:
		return true
	}
	return false
}
