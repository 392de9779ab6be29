package model

// Profile backs the profile and contact sections of the home page.
type Profile struct {
	Name    string
	Role    string
	Avatar  string
	BioHTML string
	Links   []ContactLink
}

type ContactLink struct {
	Label string
	URL   string
}
