package character_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caosrpg/tabuleiro/internal/game/character"
	"github.com/caosrpg/tabuleiro/internal/game/inventory"
	"github.com/caosrpg/tabuleiro/internal/game/skill"
)

const sampleSheet = `
name: Maya Corvo
level: 5
size: medio
attributes:
  forca: 2
  agilidade: 3
  constituicao: 3
  intelecto: 1
  presenca: 2
pv:
  current: 18
  max: 20
pp:
  current: 7
  max: 10
skills:
  - name: Furtividade
    attribute: agilidade
    proficiency: versado
    signature: true
    modifiers:
      - name: capa sombria
        value: 1
        type: bonus
        affects_dice: true
    uses:
      Resistir:
        - name: reflexos
          value: 1
          type: bonus
          affects_dice: true
armor:
  bonus: 2
  agility_cap: 2
shield_bonus: 1
items:
  - name: espada curta
    weight: 2
    quantity: 1
    durability:
      current: d8
      max: d8
      state: intacto
  - name: pergaminho
    weight: 0
    quantity: 4
currency: 120
`

func TestLoadSheet(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "maya.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleSheet), 0o600))

	c, err := character.LoadSheet(path)
	require.NoError(t, err)

	assert.Equal(t, "Maya Corvo", c.Name)
	assert.Equal(t, 5, c.Level)
	assert.Equal(t, 3, c.Attributes.Agilidade)
	assert.Equal(t, 18, c.PV.Current)

	s, ok := c.SkillByName("Furtividade")
	require.True(t, ok)
	assert.Equal(t, skill.Versado, s.Proficiency)
	assert.True(t, s.Signature)
	assert.Len(t, s.ModifiersFor("Resistir"), 2)

	require.NotNil(t, c.Armor.AgilityCap)
	assert.Equal(t, 2, *c.Armor.AgilityCap)

	require.Len(t, c.Items, 2)
	require.NotNil(t, c.Items[0].Durability)
	assert.Equal(t, inventory.Die8, c.Items[0].Durability.Current)
}

func TestLoadSheet_MissingFile(t *testing.T) {
	_, err := character.LoadSheet(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestParseSheet_RejectsEmptyName(t *testing.T) {
	_, err := character.ParseSheet([]byte("level: 3\n"))
	assert.ErrorContains(t, err, "name")
}

func TestParseSheet_RejectsBadLevel(t *testing.T) {
	_, err := character.ParseSheet([]byte("name: X\nlevel: 0\n"))
	assert.ErrorContains(t, err, "level")
}

func TestExportImportJSON_RoundTrip(t *testing.T) {
	c, err := character.ParseSheet([]byte(sampleSheet))
	require.NoError(t, err)

	data, err := character.ExportJSON(c)
	require.NoError(t, err)

	back, err := character.ImportJSON(data)
	require.NoError(t, err)
	assert.Equal(t, c, back)
}

func TestImportJSON_RejectsGarbage(t *testing.T) {
	_, err := character.ImportJSON([]byte("{"))
	assert.Error(t, err)

	_, err = character.ImportJSON([]byte("{}"))
	assert.ErrorContains(t, err, "name")
}
