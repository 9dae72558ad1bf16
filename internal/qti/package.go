package qti

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
)

// PackageItem is one assessment item going into a content package.
type PackageItem struct {
	Identifier string
	Title      string
	XML        string
}

// BuildPackage zips the item documents together with an imsmanifest.xml so
// the output imports into any QTI 3.0 aware system.
func BuildPackage(items []PackageItem) ([]byte, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("qti: package needs at least one item")
	}

	buf := new(bytes.Buffer)
	zw := zip.NewWriter(buf)

	mf := imsManifest{
		Identifier: "MANIFEST-" + items[0].Identifier,
		Xmlns:      "http://www.imsglobal.org/xsd/imscp_v1p1",
	}
	for _, it := range items {
		name := it.Identifier + ".xml"
		mf.Resources = append(mf.Resources, imsResource{
			Identifier: it.Identifier,
			Type:       "imsqti_item_xmlv3p0",
			Href:       name,
			Files:      []imsFile{{Href: name}},
		})

		w, err := zw.Create(name)
		if err != nil {
			return nil, err
		}
		if _, err := w.Write([]byte(it.XML)); err != nil {
			return nil, err
		}
	}

	mfw, err := zw.Create("imsmanifest.xml")
	if err != nil {
		return nil, err
	}
	b, err := xml.MarshalIndent(mf, "", "  ")
	if err != nil {
		return nil, err
	}
	if _, err := mfw.Write([]byte(xml.Header)); err != nil {
		return nil, err
	}
	if _, err := mfw.Write(b); err != nil {
		return nil, err
	}

	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Mini XML model for the manifest (export only).
type imsManifest struct {
	XMLName    xml.Name      `xml:"manifest"`
	Identifier string        `xml:"identifier,attr"`
	Xmlns      string        `xml:"xmlns,attr,omitempty"`
	Resources  []imsResource `xml:"resources>resource"`
}

type imsResource struct {
	Identifier string    `xml:"identifier,attr"`
	Type       string    `xml:"type,attr"`
	Href       string    `xml:"href,attr"`
	Files      []imsFile `xml:"file"`
}

type imsFile struct {
	Href string `xml:"href,attr"`
}
