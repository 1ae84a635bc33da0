package viewer

import (
	"fmt"
	"sort"
)

// Texture describes the surface finish of an atom. Finish is the POV-Ray
// finish body; the remaining fields drive the built-in Phong shading.
type Texture struct {
	Name      string
	Finish    string
	Ambient   float64
	Diffuse   float64
	Specular  float64
	Shininess float64
}

// DefaultTexture is the finish used when none is given
const DefaultTexture = "jmol"

var textures = map[string]Texture{
	"simple": {
		Finish:  "phong 0.7",
		Ambient: 0.2, Diffuse: 0.7, Specular: 0.7, Shininess: 40,
	},
	"pale": {
		Finish:  "ambient 0.5 diffuse 0.85 roughness 0.001 specular 0.200",
		Ambient: 0.5, Diffuse: 0.85, Specular: 0.2, Shininess: 120,
	},
	"intermediate": {
		Finish:  "ambient 0.3 diffuse 0.6 specular 0.1 roughness 0.04",
		Ambient: 0.3, Diffuse: 0.6, Specular: 0.1, Shininess: 25,
	},
	"vmd": {
		Finish:  "ambient 0.0 diffuse 0.65 phong 0.1 phong_size 40.0 specular 0.5",
		Ambient: 0.1, Diffuse: 0.65, Specular: 0.5, Shininess: 40,
	},
	"jmol": {
		Finish:  "ambient 0.2 diffuse 0.6 specular 1 roughness 0.001 metallic",
		Ambient: 0.2, Diffuse: 0.6, Specular: 0.8, Shininess: 80,
	},
	"ase2": {
		Finish:  "ambient 0.05 brilliance 3 diffuse 0.6 metallic specular 0.7 roughness 0.04 reflection 0.15",
		Ambient: 0.1, Diffuse: 0.6, Specular: 0.7, Shininess: 25,
	},
	"ase3": {
		Finish:  "ambient 0.15 brilliance 2 diffuse 0.6 metallic specular 1.0 roughness 0.001 reflection 0.0",
		Ambient: 0.15, Diffuse: 0.6, Specular: 1.0, Shininess: 100,
	},
	"glass": {
		Finish:  "ambient 0.05 diffuse 0.3 specular 1.0 roughness 0.001",
		Ambient: 0.3, Diffuse: 0.3, Specular: 1.0, Shininess: 120,
	},
}

func init() {
	for name, tex := range textures {
		tex.Name = name
		textures[name] = tex
	}
}

// LookupTexture returns the texture registered under name
func LookupTexture(name string) (Texture, error) {
	tex, ok := textures[name]
	if !ok {
		return Texture{}, fmt.Errorf("unknown texture %q (available: %v)", name, TextureNames())
	}
	return tex, nil
}

// TextureNames returns all texture names in sorted order
func TextureNames() []string {
	names := make([]string, 0, len(textures))
	for name := range textures {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// CLITextures are the textures offered on the command line
var CLITextures = []string{"jmol", "glass", "ase3", "vmd"}
