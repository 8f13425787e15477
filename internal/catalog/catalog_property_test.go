package catalog

import (
	"fmt"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// For any set of image entries, writing a manifest and reading it back
// preserves every entry field and the info block.

func TestPropertyManifestRoundTrip(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	scaleGen := gen.OneConstOf("1x", "2x", "3x")

	properties.Property("entries survive a write and read cycle", prop.ForAll(
		func(count int, scale string) bool {
			dir := t.TempDir()
			c := Contents{Info: XcodeInfo()}
			for i := 0; i < count; i++ {
				c.Images = append(c.Images, Universal(fmt.Sprintf("img-%d.png", i), scale))
			}
			if err := Write(dir, c); err != nil {
				return false
			}
			got, err := Read(dir)
			if err != nil {
				return false
			}
			if len(got.Images) != count || got.Info != c.Info {
				return false
			}
			for i, img := range got.Images {
				if img != c.Images[i] {
					return false
				}
			}
			return true
		},
		gen.IntRange(0, 12),
		scaleGen,
	))

	properties.Property("iphone entries keep their point size", prop.ForAll(
		func(pt int, scale string) bool {
			dir := t.TempDir()
			size := fmt.Sprintf("%dx%d", pt, pt)
			c := Contents{
				Images: []Image{IPhone(size, fmt.Sprintf("icon-%d.png", pt), scale)},
				Info:   XcodeInfo(),
			}
			if err := Write(dir, c); err != nil {
				return false
			}
			got, err := Read(dir)
			if err != nil {
				return false
			}
			return len(got.Images) == 1 && got.Images[0].Size == size && got.Images[0].Scale == scale
		},
		gen.IntRange(20, 1024),
		scaleGen,
	))

	properties.TestingRun(t)
}
