package kernel

import "strings"

type JobTitle string

func (t JobTitle) String() string { return string(t) }

// Normalize trims surrounding whitespace
func (t JobTitle) Normalize() JobTitle { return JobTitle(strings.TrimSpace(string(t))) }

func (t JobTitle) IsEmpty() bool { return strings.TrimSpace(string(t)) == "" }

type JobDescription string

type Email string

func (e Email) String() string { return string(e) }

type Phone string

func (p Phone) String() string { return string(p) }
