package usecase

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
}

func TestKnowledgeService_Load_MissingDirectory(t *testing.T) {
	svc := NewKnowledgeService(filepath.Join(t.TempDir(), "does-not-exist"))

	base, ignored := svc.Load(context.Background())

	assert.Empty(t, base)
	assert.Empty(t, ignored)
}

func TestKnowledgeService_Load_MixedFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "facts.json", `{"full_name":"Jane Q","name":"Jane"}`)
	writeFile(t, dir, "summary.md", "# Summary\nSeasoned engineer.")
	writeFile(t, dir, "style.txt", "Writes concisely.")
	writeFile(t, dir, "broken.json", `{"oops":`)
	writeFile(t, dir, "resume.pdf", "%PDF-1.4")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested"), 0755))

	svc := NewKnowledgeService(dir)
	base, ignored := svc.Load(context.Background())

	require.Len(t, base, 3)
	assert.Contains(t, base, "facts")
	assert.Contains(t, base, "summary")
	assert.Contains(t, base, "style")

	// JSON documents are stored pretty-printed
	assert.Contains(t, base["facts"].Content, "\n  \"full_name\": \"Jane Q\"")

	// Plain text is stored verbatim
	assert.Equal(t, "# Summary\nSeasoned engineer.", base["summary"].Content)

	require.Len(t, ignored, 2)
	files := []string{ignored[0].File, ignored[1].File}
	assert.Contains(t, files, "broken.json")
	assert.Contains(t, files, "resume.pdf")
}

func TestKnowledgeService_Load_MalformedJSONNextToValidText(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "broken.json", `not json at all`)
	writeFile(t, dir, "bio.txt", "Hello.")

	svc := NewKnowledgeService(dir)
	base, ignored := svc.Load(context.Background())

	require.Len(t, base, 1)
	assert.Equal(t, "Hello.", base["bio"].Content)
	require.Len(t, ignored, 1)
	assert.Equal(t, "broken.json", ignored[0].File)
}

func TestKnowledgeService_Load_DuplicateBaseNamesLastWins(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "bio.md", "From markdown.")
	writeFile(t, dir, "bio.txt", "From text.")

	svc := NewKnowledgeService(dir)
	base, ignored := svc.Load(context.Background())

	// Directory entries come back name-sorted, so bio.txt overwrites bio.md.
	require.Len(t, base, 1)
	assert.Equal(t, "From text.", base["bio"].Content)
	assert.Empty(t, ignored)
}

func TestKnowledgeService_Load_StripsExtensionCaseInsensitively(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "Projects.MD", "Top projects.")

	svc := NewKnowledgeService(dir)
	base, _ := svc.Load(context.Background())

	require.Len(t, base, 1)
	assert.Contains(t, base, "Projects")
}
