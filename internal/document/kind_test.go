package document_test

import (
	"testing"

	"github.com/phrazzld/devai/internal/document"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKinds(t *testing.T) {
	tests := []struct {
		kind        document.Kind
		command     string
		implemented bool
		secretID    string
		stub        string
	}{
		{document.KindReadme, "readme", true, "document_readme", ""},
		{document.KindUpdateReadme, "update-readme", false, "", "Update README"},
		{document.KindReleaseNotes, "releasenotes", true, "document_releasenotes", ""},
		{document.KindUpdateReleaseNotes, "update-releasenotes", false, "", "create release notes"},
	}

	for _, tt := range tests {
		t.Run(tt.command, func(t *testing.T) {
			assert.Equal(t, tt.command, tt.kind.CommandName())
			assert.Equal(t, tt.implemented, tt.kind.Implemented())
			assert.Equal(t, tt.secretID, tt.kind.SecretID())
			assert.Equal(t, tt.stub, tt.kind.StubMessage())
			assert.Equal(t, tt.implemented, tt.kind.DefaultTemplate() != "")
			assert.Equal(t, tt.implemented, tt.kind.ProgressMessage() != "")
		})
	}
}

func TestKindsCoverEveryCommandOnce(t *testing.T) {
	seen := map[string]bool{}
	for _, k := range document.Kinds() {
		require.False(t, seen[k.CommandName()], "Duplicate command %s", k.CommandName())
		seen[k.CommandName()] = true
	}
	assert.Len(t, seen, 4)
	assert.Equal(t, "kind(99)", document.Kind(99).String())
}

func TestReleaseNotesHaveTheirOwnSecret(t *testing.T) {
	assert.Equal(t, "document_releasenotes", document.KindReleaseNotes.SecretID())
	assert.NotEqual(t, document.KindReadme.SecretID(), document.KindReleaseNotes.SecretID(),
		"A stored README template must not be used for release notes")
}

func TestDefaultTemplates(t *testing.T) {
	for _, section := range []string{
		"Description", "Table of Contents", "Features", "Installation",
		"Usage", "Contributing", "License", "Contact",
	} {
		assert.Contains(t, document.DefaultReadmeTemplate, section)
	}
	assert.Contains(t, document.DefaultReadmeTemplate, "### Example Dialogue ###")
	assert.Contains(t, document.DefaultReleaseNotesTemplate, "Create detailed release notes")
}

func TestWrapContext(t *testing.T) {
	assert.Equal(t, "### Context (code) ###\ndef foo(): pass\n", document.WrapContext("def foo(): pass"))
	assert.Equal(t, "### Context (code) ###\n\n", document.WrapContext(""))
}
