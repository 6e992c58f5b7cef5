package loader

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davrell/kinsite/internal/gen"
	"github.com/davrell/kinsite/internal/testutil"
)

const sampleTree = `<?xml version="1.0" encoding="UTF-8"?>
<tree>
  <people>
    <person handle="p1" id="I0001" gender="F" change="100">
      <name first="Anna" surname="Berg" prefix="van" group="Berg"/>
      <eventref hlink="e1"/>
      <famref hlink="f1"/>
      <objref hlink="o1"/>
      <noteref hlink="n1"/>
    </person>
    <person handle="p2" id="I0002" gender="M" change="100">
      <name first="Jonas" surname="Aaberg"/>
    </person>
  </people>
  <families>
    <family handle="f1" id="F0001" change="100">
      <father hlink="p2"/>
      <mother hlink="p1"/>
      <childref hlink="p1"/>
      <eventref hlink="e2"/>
    </family>
  </families>
  <events>
    <event handle="e1" id="E0001" change="100">
      <type>Birth</type>
      <dateval val="1874-03-04"/>
      <place hlink="pl1"/>
      <description>Born at home</description>
      <attribute type="Witness" value="K. Larsen"/>
    </event>
    <event handle="e2" id="E0002" change="100">
      <type>Marriage</type>
      <dateval val="1899"/>
    </event>
  </events>
  <places>
    <place handle="pl1" id="P0001" name="Aarhus" lat="56.15" long="10.21"/>
  </places>
  <objects>
    <object handle="o1" id="O0001" src="anna.jpg" mime="image/jpeg" description="Anna, 1900"/>
  </objects>
  <notes>
    <note handle="n1" id="N0001">Some **markdown** text.</note>
  </notes>
  <namegroups>
    <map key="van Berg" value="Berg"/>
  </namegroups>
</tree>`

func TestLoadFromString(t *testing.T) {
	db, err := LoadFromString(sampleTree)
	require.NoError(t, err)

	p := db.Person("p1")
	require.NotNil(t, p)
	assert.Equal(t, "I0001", p.ID)
	assert.Equal(t, "Anna", p.Name.First)
	assert.Equal(t, "van", p.Name.Prefix)
	assert.Equal(t, "Berg", p.Name.GroupAs)
	assert.Equal(t, []gen.Handle{"e1"}, p.EventRefs)
	assert.Equal(t, []gen.Handle{"f1"}, p.FamilyRefs)
	assert.Equal(t, []gen.Handle{"o1"}, p.MediaRefs)
	assert.Equal(t, []gen.Handle{"n1"}, p.NoteRefs)

	f := db.Family("f1")
	require.NotNil(t, f)
	assert.Equal(t, gen.Handle("p2"), f.FatherRef)
	assert.Equal(t, gen.Handle("p1"), f.MotherRef)
	assert.Equal(t, []gen.Handle{"p1"}, f.ChildRefs)

	e := db.Event("e1")
	require.NotNil(t, e)
	assert.Equal(t, gen.Birth, e.Type)
	assert.Equal(t, gen.Date{Year: 1874, Month: 3, Day: 4}, e.Date)
	assert.Equal(t, gen.Handle("pl1"), e.PlaceRef)
	assert.Equal(t, "Born at home", e.Desc)
	assert.Equal(t, []gen.Attribute{{Type: "Witness", Value: "K. Larsen"}}, e.Attributes)

	// year-only date
	assert.Equal(t, gen.Date{Year: 1899}, db.Event("e2").Date)

	assert.Equal(t, "Aarhus", db.PlaceName("pl1"))

	m := db.MediaObject("o1")
	require.NotNil(t, m)
	assert.Equal(t, "anna.jpg", m.Path)
	assert.Equal(t, "image/jpeg", m.Mime)
	assert.Equal(t, "Anna, 1900", m.Desc)

	n := db.Note("n1")
	require.NotNil(t, n)
	assert.Equal(t, "Some **markdown** text.", n.Text)

	assert.Equal(t, "Berg", db.NameGroup("van Berg"))
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteFile(t, dir, "tree.xml", sampleTree)

	db, err := Load(filepath.Join(dir, "tree.xml"))
	require.NoError(t, err)
	assert.Len(t, db.People, 2)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.xml"))
	assert.Error(t, err)
}

func TestLoadBadXML(t *testing.T) {
	_, err := LoadFromString("<tree><people>")
	assert.Error(t, err)
}

func TestLoadBadDate(t *testing.T) {
	_, err := LoadFromString(`<tree><events><event handle="e1" id="E1"><type>Birth</type><dateval val="18xx"/></event></events></tree>`)
	assert.Error(t, err)

	_, err = LoadFromString(`<tree><events><event handle="e1" id="E1"><type>Birth</type><dateval val="1874-13-01"/></event></events></tree>`)
	assert.Error(t, err)
}

func TestLoadPersonWithoutHandle(t *testing.T) {
	_, err := LoadFromString(`<tree><people><person id="I1"><name first="A"/></person></people></tree>`)
	assert.Error(t, err)
}
