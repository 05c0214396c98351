package commitgen

import (
	"fmt"
	"regexp"
	"strings"
)

// CommitType is a Conventional Commits change type.
type CommitType string

// The closed set of commit types.
const (
	TypeFeat     CommitType = "feat"
	TypeFix      CommitType = "fix"
	TypeDocs     CommitType = "docs"
	TypeStyle    CommitType = "style"
	TypeRefactor CommitType = "refactor"
	TypePerf     CommitType = "perf"
	TypeTest     CommitType = "test"
	TypeBuild    CommitType = "build"
	TypeCI       CommitType = "ci"
	TypeChore    CommitType = "chore"
	TypeRevert   CommitType = "revert"
)

var commitTypes = map[CommitType]bool{
	TypeFeat: true, TypeFix: true, TypeDocs: true, TypeStyle: true,
	TypeRefactor: true, TypePerf: true, TypeTest: true, TypeBuild: true,
	TypeCI: true, TypeChore: true, TypeRevert: true,
}

// Valid reports whether t is one of the recognized commit types.
func (t CommitType) Valid() bool {
	return commitTypes[t]
}

// CommitMessage is a structured Conventional Commits message.
type CommitMessage struct {
	Type        CommitType
	Scope       string
	Breaking    bool
	Description string
	Body        string
	Footer      string
}

var messageHeaderRe = regexp.MustCompile(`^([a-z]+)(?:\(([^)]+)\))?(!)?: (.+)$`)

var footerTokenRe = regexp.MustCompile(`^(?:BREAKING CHANGE|[A-Za-z][A-Za-z-]*): `)

// ParseCommitMessage parses text in `type(scope)!: description` form,
// followed by optional body and footer paragraphs.
func ParseCommitMessage(text string) (*CommitMessage, error) {
	text = strings.TrimSpace(strings.ReplaceAll(text, "\r\n", "\n"))
	if text == "" {
		return nil, fmt.Errorf("commit message is empty")
	}

	header, rest, _ := strings.Cut(text, "\n")
	m := messageHeaderRe.FindStringSubmatch(strings.TrimSpace(header))
	if m == nil {
		return nil, fmt.Errorf("commit message header %q is not in type(scope): description form", header)
	}
	typ := CommitType(m[1])
	if !typ.Valid() {
		return nil, fmt.Errorf("unknown commit type %q", m[1])
	}

	msg := &CommitMessage{
		Type:        typ,
		Scope:       m[2],
		Breaking:    m[3] == "!",
		Description: m[4],
	}

	rest = strings.TrimSpace(rest)
	if rest != "" {
		paragraphs := strings.Split(rest, "\n\n")
		last := strings.TrimSpace(paragraphs[len(paragraphs)-1])
		if len(paragraphs) > 1 && footerTokenRe.MatchString(last) {
			msg.Footer = last
			msg.Body = strings.TrimSpace(strings.Join(paragraphs[:len(paragraphs)-1], "\n\n"))
		} else {
			msg.Body = rest
		}
	}
	if strings.Contains(msg.Footer, "BREAKING CHANGE:") {
		msg.Breaking = true
	}

	return msg, nil
}

// String renders the message back to its literal Conventional Commits form.
func (m *CommitMessage) String() string {
	var sb strings.Builder
	sb.WriteString(string(m.Type))
	if m.Scope != "" {
		fmt.Fprintf(&sb, "(%s)", m.Scope)
	}
	if m.Breaking {
		sb.WriteString("!")
	}
	sb.WriteString(": ")
	sb.WriteString(m.Description)
	if m.Body != "" {
		sb.WriteString("\n\n")
		sb.WriteString(m.Body)
	}
	if m.Footer != "" {
		sb.WriteString("\n\n")
		sb.WriteString(m.Footer)
	}
	return sb.String()
}
