package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/dieta/internal/model"
	"github.com/idilsaglam/dieta/internal/store/jsonstore"
)

type harness struct {
	config string
	draft  string
}

func newHarness(t *testing.T) harness {
	t.Helper()
	t.Setenv("DIETA_DRAFT_FILE", "")
	t.Setenv("DIETA_THEME", "")
	t.Setenv("DIETA_LOG_LEVEL", "")

	dir := t.TempDir()
	h := harness{
		config: filepath.Join(dir, "config.yaml"),
		draft:  filepath.Join(dir, "draft.json"),
	}
	cfg := "draft_file: " + h.draft + "\ntheme: mono\nlogging:\n  level: info\n  file: " + filepath.Join(dir, "dieta.log") + "\n"
	require.NoError(t, os.WriteFile(h.config, []byte(cfg), 0o644))
	return h
}

func (h harness) run(args ...string) (int, string, string) {
	var out, errOut bytes.Buffer
	code := Run(context.Background(), append([]string{"--config", h.config}, args...), &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestSubmit_Valid(t *testing.T) {
	h := newHarness(t)
	code, out, _ := h.run("submit", "--gender", "masculino", "--objective", "Emagrecer", "--level", "Sedentário")
	require.Equal(t, ExitOK, code)
	assert.Contains(t, out, "próximo passo: /nutrition")

	d, err := jsonstore.Load(h.draft)
	require.NoError(t, err)
	assert.Equal(t, model.CreateInput{Gender: "masculino", Objective: "Emagrecer", Level: "Sedentário"}, d.Profile())
	assert.NotEmpty(t, d.ID)
}

func TestSubmit_MissingGender(t *testing.T) {
	h := newHarness(t)
	code, out, errOut := h.run("submit", "--objective", "Hipertrofia", "--level", "Sedentário")
	assert.Equal(t, ExitUsage, code)
	assert.Contains(t, errOut, "gender: O sexo é obrigatório")
	assert.NotContains(t, errOut, "objective")
	assert.NotContains(t, out, "próximo passo")

	_, err := os.Stat(h.draft)
	assert.True(t, os.IsNotExist(err), "invalid submit must not write the draft")
}

func TestSubmit_KeepsEarlierStep(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, jsonstore.Save(h.draft, model.Draft{ID: "d1", Name: "Ana", Weight: "60"}))

	code, _, _ := h.run("submit", "--gender", "feminino", "--objective", "Definição", "--level", model.LevelOptions[3].Value)
	require.Equal(t, ExitOK, code)

	d, err := jsonstore.Load(h.draft)
	require.NoError(t, err)
	assert.Equal(t, "d1", d.ID)
	assert.Equal(t, "Ana", d.Name)
	assert.Equal(t, "feminino", d.Gender)
}

func TestDraftShowAndReset(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, jsonstore.Save(h.draft, model.Draft{ID: "d1", Gender: "feminino", Level: "Sedentário"}))

	code, out, _ := h.run("draft", "show")
	require.Equal(t, ExitOK, code)
	assert.Contains(t, out, "Feminino")
	assert.Contains(t, out, "Sedentário (pouco ou nenhuma atividade física)")

	code, out, _ = h.run("draft", "show", "--json")
	require.Equal(t, ExitOK, code)
	assert.Contains(t, out, `"gender": "feminino"`)

	code, _, _ = h.run("draft", "reset")
	require.Equal(t, ExitOK, code)
	_, err := os.Stat(h.draft)
	assert.True(t, os.IsNotExist(err))
}

func TestOptions(t *testing.T) {
	h := newHarness(t)
	code, out, _ := h.run("options")
	require.Equal(t, ExitOK, code)
	for _, o := range model.ObjectiveOptions {
		assert.Contains(t, out, o.Value)
	}
	assert.Contains(t, out, "--level")
}

func TestUsageErrors(t *testing.T) {
	h := newHarness(t)

	code, _, errOut := h.run("nope")
	assert.Equal(t, ExitUsage, code)
	assert.Contains(t, errOut, "unknown command")

	code, _, _ = h.run("submit", "--bogus")
	assert.Equal(t, ExitUsage, code)

	code, _, errOut = h.run("create", "--from", "finish")
	assert.Equal(t, ExitUsage, code)
	assert.Contains(t, errOut, "unknown step")
}

func TestBadConfig(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, os.WriteFile(h.config, []byte("theme: pink\n"), 0o644))
	code, _, errOut := h.run("options")
	assert.Equal(t, ExitError, code)
	assert.Contains(t, errOut, "unknown theme")
}
