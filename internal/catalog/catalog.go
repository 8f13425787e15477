// Package catalog writes Xcode asset-catalog Contents.json manifests.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// FileName is the manifest name Xcode expects inside every asset directory.
const FileName = "Contents.json"

// Contents is the manifest body: the image entries plus authoring info.
type Contents struct {
	Images []Image `json:"images"`
	Info   Info    `json:"info"`
}

// Image is one entry in the images array. Size is empty for imagesets,
// which carry only idiom, filename and scale.
type Image struct {
	Size     string `json:"size,omitempty"`
	Idiom    string `json:"idiom"`
	Filename string `json:"filename"`
	Scale    string `json:"scale,omitempty"`
}

// Info identifies the manifest format version and the authoring tool.
type Info struct {
	Version int    `json:"version"`
	Author  string `json:"author"`
}

// XcodeInfo is the info block Xcode writes into its own catalogs.
func XcodeInfo() Info {
	return Info{Version: 1, Author: "xcode"}
}

// Universal returns an imageset entry covering all devices.
func Universal(filename, scale string) Image {
	return Image{Idiom: "universal", Filename: filename, Scale: scale}
}

// IPhone returns an iPhone app-icon entry for a point size like "60x60".
func IPhone(size, filename, scale string) Image {
	return Image{Size: size, Idiom: "iphone", Filename: filename, Scale: scale}
}

// Marketing returns the 1024pt App Store icon entry.
func Marketing(filename string) Image {
	return Image{Size: "1024x1024", Idiom: "ios-marketing", Filename: filename, Scale: "1x"}
}

// Write creates dir if needed and writes the manifest into it.
func Write(dir string, c Contents) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal manifest: %w", err)
	}
	data = append(data, '\n')
	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// Read loads a manifest back from dir. Mostly useful for verification.
func Read(dir string) (Contents, error) {
	data, err := os.ReadFile(filepath.Join(dir, FileName))
	if err != nil {
		return Contents{}, fmt.Errorf("read manifest: %w", err)
	}
	var c Contents
	if err := json.Unmarshal(data, &c); err != nil {
		return Contents{}, fmt.Errorf("parse manifest: %w", err)
	}
	return c, nil
}
