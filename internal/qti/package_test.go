package qti

import (
	"archive/zip"
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPackage(t *testing.T) {
	items := []PackageItem{
		{Identifier: "q1", Title: "First", XML: "<qti-assessment-item identifier=\"q1\"/>"},
		{Identifier: "q2", Title: "Second", XML: "<qti-assessment-item identifier=\"q2\"/>"},
	}

	data, err := BuildPackage(items)
	require.NoError(t, err)

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)

	files := make(map[string]string, len(zr.File))
	for _, f := range zr.File {
		rc, err := f.Open()
		require.NoError(t, err)
		content, err := io.ReadAll(rc)
		require.NoError(t, err)
		rc.Close()
		files[f.Name] = string(content)
	}

	require.Contains(t, files, "imsmanifest.xml")
	require.Contains(t, files, "q1.xml")
	require.Contains(t, files, "q2.xml")

	assert.Equal(t, items[0].XML, files["q1.xml"])
	assert.Equal(t, items[1].XML, files["q2.xml"])

	manifest := files["imsmanifest.xml"]
	assert.Contains(t, manifest, `identifier="MANIFEST-q1"`)
	assert.Contains(t, manifest, `type="imsqti_item_xmlv3p0"`)
	assert.Contains(t, manifest, `href="q1.xml"`)
	assert.Contains(t, manifest, `href="q2.xml"`)
	assert.Contains(t, manifest, "http://www.imsglobal.org/xsd/imscp_v1p1")
}

func TestBuildPackage_Empty(t *testing.T) {
	data, err := BuildPackage(nil)
	assert.Error(t, err)
	assert.Nil(t, data)
}
