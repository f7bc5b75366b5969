package document

import "fmt"

// Kind identifies a document command.
type Kind int

const (
	// KindReadme generates a README from context.
	KindReadme Kind = iota + 1
	// KindUpdateReadme is declared but not implemented yet.
	KindUpdateReadme
	// KindReleaseNotes generates release notes from context.
	KindReleaseNotes
	// KindUpdateReleaseNotes is declared but not implemented yet.
	KindUpdateReleaseNotes
)

// Secret ids under which custom prompt templates are stored.
const (
	ReadmeSecretID = "document_readme"

	// ReleaseNotesSecretID is separate from ReadmeSecretID. Earlier devai
	// releases read the release notes template from document_readme too, so a
	// project that relied on that must copy its template to this id.
	ReleaseNotesSecretID = "document_releasenotes"
)

// Acknowledgments printed by the update commands.
const (
	UpdateReadmeMessage       = "Update README"
	UpdateReleaseNotesMessage = "create release notes"
)

// Kinds lists every document kind in command order.
func Kinds() []Kind {
	return []Kind{KindReadme, KindUpdateReadme, KindReleaseNotes, KindUpdateReleaseNotes}
}

// CommandName is the CLI subcommand for the kind.
func (k Kind) CommandName() string {
	switch k {
	case KindReadme:
		return "readme"
	case KindUpdateReadme:
		return "update-readme"
	case KindReleaseNotes:
		return "releasenotes"
	case KindUpdateReleaseNotes:
		return "update-releasenotes"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// String implements fmt.Stringer.
func (k Kind) String() string {
	return k.CommandName()
}

// Implemented reports whether the kind generates a document. Update kinds
// only acknowledge the request.
func (k Kind) Implemented() bool {
	return k == KindReadme || k == KindReleaseNotes
}

// SecretID is the prompt template key for implemented kinds, empty otherwise.
func (k Kind) SecretID() string {
	switch k {
	case KindReadme:
		return ReadmeSecretID
	case KindReleaseNotes:
		return ReleaseNotesSecretID
	default:
		return ""
	}
}

// StubMessage is the acknowledgment for kinds that are not implemented.
func (k Kind) StubMessage() string {
	switch k {
	case KindUpdateReadme:
		return UpdateReadmeMessage
	case KindUpdateReleaseNotes:
		return UpdateReleaseNotesMessage
	default:
		return ""
	}
}

// DefaultTemplate is the built-in instruction used when no custom template is stored.
func (k Kind) DefaultTemplate() string {
	switch k {
	case KindReadme:
		return DefaultReadmeTemplate
	case KindReleaseNotes:
		return DefaultReleaseNotesTemplate
	default:
		return ""
	}
}

// ProgressMessage is the line shown to the user before generation starts.
func (k Kind) ProgressMessage() string {
	switch k {
	case KindReadme:
		return "Generating and printing the README...."
	case KindReleaseNotes:
		return "Generating and printing release notes."
	default:
		return ""
	}
}
