package fonts

import (
	"fmt"

	cfg "github.com/automoto/lockstrike/config"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

type FontName string

const (
	Regular FontName = "regular"
	Bold    FontName = "bold"
	Title   FontName = "title"
	Small   FontName = "small"
)

func (f FontName) Get() font.Face {
	return getFont(f)
}

var (
	fonts = map[FontName]font.Face{}
)

// LoadDefaults loads the Go fonts at the sizes the HUD uses.
func LoadDefaults() error {
	if err := LoadFontWithSize(Regular, goregular.TTF, cfg.HUD.FontSize); err != nil {
		return err
	}
	if err := LoadFontWithSize(Small, goregular.TTF, cfg.HUD.FontSize*0.75); err != nil {
		return err
	}
	if err := LoadFontWithSize(Bold, gobold.TTF, cfg.HUD.FontSize*1.25); err != nil {
		return err
	}
	return LoadFontWithSize(Title, gobold.TTF, cfg.HUD.TitleFontSize)
}

func LoadFontWithSize(name FontName, ttf []byte, size float64) error {
	fontData, err := truetype.Parse(ttf)
	if err != nil {
		return fmt.Errorf("parse font %s: %w", name, err)
	}
	fonts[name] = truetype.NewFace(fontData, &truetype.Options{Size: size})
	return nil
}

func getFont(name FontName) font.Face {
	f, ok := fonts[name]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", name))
	}
	return f
}
