package bank

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func trickyBank() Bank {
	return Bank{
		{ID: "1", Text: `He said "go"`, Choices: []string{"a,b", "c\nd", `"e"`, ""}, CorrectIndex: 2, Explanation: "quotes, commas\r\nand breaks"},
		{ID: "x-2", Text: "plain", Choices: []string{"w", "x", "y", "z"}, CorrectIndex: 0},
	}
}

func TestExport_Format(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Export(&buf, Bank{{ID: "7", Text: "Q", Choices: []string{"a", "b"}, CorrectIndex: 1, Explanation: "e"}}))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "id,question,choiceA,choiceB,choiceC,choiceD,answer,explanation", lines[0])
	assert.Equal(t, `"7","Q","a","b","","","1","e"`, lines[1])
}

func TestExport_RoundTrip(t *testing.T) {
	for _, b := range []Bank{Sample(), trickyBank()} {
		var buf bytes.Buffer
		require.NoError(t, Export(&buf, b))

		got, err := LoadText(buf.String())
		require.NoError(t, err)
		assert.Equal(t, b, got)
	}
}

func TestJSON_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, ExportJSON(&buf, trickyBank()))

	got, err := LoadJSON(buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, trickyBank(), got)
}

func TestLoadJSON_NumericAndMissingIDs(t *testing.T) {
	data := []byte(`{"questions":[
		{"id": 42, "question": "Q1", "choices": ["a","b"], "answer": 1},
		{"question": "Q2", "choices": ["c"], "answer": 0, "explanation": "why"}
	]}`)

	got, err := LoadJSON(data)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "42", got[0].ID)
	assert.Equal(t, "2", got[1].ID)
	assert.Equal(t, "why", got[1].Explanation)
}

func TestLoadJSON_Rejects(t *testing.T) {
	tests := []struct {
		name string
		data string
		want error
	}{
		{"not json", `id,question`, ErrInvalidFile},
		{"missing questions", `{}`, ErrInvalidFile},
		{"answer not integer", `{"questions":[{"question":"Q","choices":[],"answer":"B"}]}`, ErrInvalidFile},
		{"unknown field", `{"questions":[{"question":"Q","choices":[],"answer":0,"extra":1}]}`, ErrInvalidFile},
		{"empty question", `{"questions":[{"question":"","choices":[],"answer":0}]}`, ErrInvalidFile},
		{"no questions", `{"questions":[]}`, ErrNoValidRows},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadJSON([]byte(tt.data))
			assert.True(t, errors.Is(err, tt.want), "err = %v, want %v", err, tt.want)
		})
	}
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()

	csvPath := filepath.Join(dir, "bank.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte("question,choiceA,choiceB,answer\nQ,x,y,B\n"), 0o644))
	b, err := ReadFile(csvPath)
	require.NoError(t, err)
	require.Len(t, b, 1)
	assert.Equal(t, 1, b[0].CorrectIndex)

	jsonPath := filepath.Join(dir, "bank.JSON")
	require.NoError(t, os.WriteFile(jsonPath, []byte(`{"questions":[{"question":"Q","choices":["x"],"answer":0}]}`), 0o644))
	b, err = ReadFile(jsonPath)
	require.NoError(t, err)
	assert.Equal(t, "Q", b[0].Text)

	emptyPath := filepath.Join(dir, "empty.csv")
	require.NoError(t, os.WriteFile(emptyPath, nil, 0o644))

	for _, p := range []string{"", "   ", filepath.Join(dir, "missing.csv"), emptyPath} {
		_, err := ReadFile(p)
		assert.ErrorIs(t, err, ErrInvalidFile, "path %q", p)
	}
}

func TestBank_CloneIsDeep(t *testing.T) {
	b := Sample()
	c := b.Clone()
	c[0].Choices[0] = "changed"
	assert.NotEqual(t, b[0].Choices[0], c[0].Choices[0])
}

func TestQuestion_CorrectChoice(t *testing.T) {
	q := Question{Choices: []string{"a", "b"}, CorrectIndex: 1}
	assert.Equal(t, "b", q.CorrectChoice())
	assert.True(t, q.IsCorrect(1))

	q.CorrectIndex = 5
	assert.Equal(t, "", q.CorrectChoice())
	for i := range q.Choices {
		assert.False(t, q.IsCorrect(i))
	}
}
