package palette

// Stops sampled from the matplotlib colormaps of the same name
var registry = func() map[string]*Linear {
	maps := []*Linear{
		// perceptually uniform
		mustLinear("viridis",
			"#440154", "#482374", "#404387", "#345e8d", "#29788e", "#20908c",
			"#22a784", "#44be70", "#79d151", "#bdde26", "#fde725"),
		mustLinear("plasma",
			"#0d0887", "#4b03a1", "#7d03a8", "#a82296", "#cb4679", "#e56b5d",
			"#f89441", "#fdc328", "#f0f921"),
		mustLinear("inferno",
			"#000004", "#280b54", "#65156e", "#9f2a63", "#d44842", "#f57d15",
			"#fac127", "#fcffa4"),
		mustLinear("magma",
			"#000004", "#1c1044", "#4f127b", "#812581", "#b5367a", "#e55064",
			"#fb8761", "#fec287", "#fcfdbf"),
		mustLinear("cividis",
			"#00224e", "#123570", "#3b496c", "#575d6d", "#707173", "#8a8779",
			"#a69d75", "#c4b56c", "#e4cf5b", "#fee838"),

		// sequential
		mustLinear("gray", "#000000", "#ffffff"),
		mustLinear("bone", "#000000", "#545474", "#a7c7c7", "#ffffff"),
		mustLinear("copper", "#000000", "#ffc77f"),
		mustLinear("hot", "#0b0000", "#ff0000", "#ffff00", "#ffffff"),
		mustLinear("cool", "#00ffff", "#ff00ff"),
		mustLinear("spring", "#ff00ff", "#ffff00"),
		mustLinear("summer", "#008066", "#ffff66"),
		mustLinear("autumn", "#ff0000", "#ffff00"),
		mustLinear("winter", "#0000ff", "#00ff80"),

		// diverging
		mustLinear("coolwarm",
			"#3b4cc0", "#7396f5", "#b0cbfc", "#dcdddd", "#f6bfa6", "#ea7b60", "#b40426"),
		mustLinear("Spectral",
			"#9e0142", "#d53e4f", "#f46d43", "#fdae61", "#fee08b", "#ffffbf",
			"#e6f598", "#abdda4", "#66c2a5", "#3288bd", "#5e4fa2"),
		mustLinear("RdYlBu",
			"#a50026", "#d73027", "#f46d43", "#fdae61", "#fee090", "#ffffbf",
			"#e0f3f8", "#abd9e9", "#74add1", "#4575b4", "#313695"),

		// ColorBrewer sequential
		mustLinear("Blues", "#f7fbff", "#deebf7", "#c6dbef", "#9ecae1", "#6baed6", "#4292c6", "#2171b5", "#08519c", "#08306b"),
		mustLinear("BuGn", "#f7fcfd", "#e5f5f9", "#ccece6", "#99d8c9", "#66c2a4", "#41ae76", "#238b45", "#006d2c", "#00441b"),
		mustLinear("BuPu", "#f7fcfd", "#e0ecf4", "#bfd3e6", "#9ebcda", "#8c96c6", "#8c6bb1", "#88419d", "#810f7c", "#4d004b"),
		mustLinear("GnBu", "#f7fcf0", "#e0f3db", "#ccebc5", "#a8ddb5", "#7bccc4", "#4eb3d3", "#2b8cbe", "#0868ac", "#084081"),
		mustLinear("Greens", "#f7fcf5", "#e5f5e0", "#c7e9c0", "#a1d99b", "#74c476", "#41ab5d", "#238b45", "#006d2c", "#00441b"),
		mustLinear("Greys", "#ffffff", "#f0f0f0", "#d9d9d9", "#bdbdbd", "#969696", "#737373", "#525252", "#252525", "#000000"),
		mustLinear("Oranges", "#fff5eb", "#fee6ce", "#fdd0a2", "#fdae6b", "#fd8d3c", "#f16913", "#d94801", "#a63603", "#7f2704"),
		mustLinear("OrRd", "#fff7ec", "#fee8c8", "#fdd49e", "#fdbb84", "#fc8d59", "#ef6548", "#d7301f", "#b30000", "#7f0000"),
		mustLinear("PuBu", "#fff7fb", "#ece7f2", "#d0d1e6", "#a6bddb", "#74a9cf", "#3690c0", "#0570b0", "#045a8d", "#023858"),
		mustLinear("PuBuGn", "#fff7fb", "#ece2f0", "#d0d1e6", "#a6bddb", "#67a9cf", "#3690c0", "#02818a", "#016c59", "#014636"),
		mustLinear("PuRd", "#f7f4f9", "#e7e1ef", "#d4b9da", "#c994c7", "#df65b0", "#e7298a", "#ce1256", "#980043", "#67001f"),
		mustLinear("Purples", "#fcfbfd", "#efedf5", "#dadaeb", "#bcbddc", "#9e9ac8", "#807dba", "#6a51a3", "#54278f", "#3f007d"),
		mustLinear("RdPu", "#fff7f3", "#fde0dd", "#fcc5c0", "#fa9fb5", "#f768a1", "#dd3497", "#ae017e", "#7a0177", "#49006a"),
		mustLinear("Reds", "#fff5f0", "#fee0d2", "#fcbba1", "#fc9272", "#fb6a4a", "#ef3b2c", "#cb181d", "#a50f15", "#67000d"),
		mustLinear("YlGn", "#ffffe5", "#f7fcb9", "#d9f0a3", "#addd8e", "#78c679", "#41ab5d", "#238443", "#006837", "#004529"),
		mustLinear("YlGnBu", "#ffffd9", "#edf8b1", "#c7e9b4", "#7fcdbb", "#41b6c4", "#1d91c0", "#225ea8", "#253494", "#081d58"),
		mustLinear("YlOrBr", "#ffffe5", "#fff7bc", "#fee391", "#fec44f", "#fe9929", "#ec7014", "#cc4c02", "#993404", "#662506"),
		mustLinear("YlOrRd", "#ffffcc", "#ffeda0", "#fed976", "#feb24c", "#fd8d3c", "#fc4e2a", "#e31a1c", "#bd0026", "#800026"),

		// ColorBrewer diverging
		mustLinear("BrBG", "#543005", "#8c510a", "#bf812d", "#dfc27d", "#f6e8c3", "#f5f5f5", "#c7eae5", "#80cdc1", "#35978f", "#01665e", "#003c30"),
		mustLinear("PiYG", "#8e0152", "#c51b7d", "#de77ae", "#f1b6da", "#fde0ef", "#f7f7f7", "#e6f5d0", "#b8e186", "#7fbc41", "#4d9221", "#276419"),
		mustLinear("PRGn", "#40004b", "#762a83", "#9970ab", "#c2a5cf", "#e7d4e8", "#f7f7f7", "#d9f0d3", "#a6dba0", "#5aae61", "#1b7837", "#00441b"),
		mustLinear("PuOr", "#7f3b08", "#b35806", "#e08214", "#fdb863", "#fee0b6", "#f7f7f7", "#d8daeb", "#b2abd2", "#8073ac", "#542788", "#2d004b"),
		mustLinear("RdBu", "#67001f", "#b2182b", "#d6604d", "#f4a582", "#fddbc7", "#f7f7f7", "#d1e5f0", "#92c5de", "#4393c3", "#2166ac", "#053061"),
		mustLinear("RdGy", "#67001f", "#b2182b", "#d6604d", "#f4a582", "#fddbc7", "#ffffff", "#e0e0e0", "#bababa", "#878787", "#4d4d4d", "#1a1a1a"),
		mustLinear("RdYlGn", "#a50026", "#d73027", "#f46d43", "#fdae61", "#fee08b", "#ffffbf", "#d9ef8b", "#a6d96a", "#66bd63", "#1a9850", "#006837"),
		mustLinear("bwr", "#0000ff", "#ffffff", "#ff0000"),
		mustLinear("seismic", "#00004c", "#0000ff", "#ffffff", "#ff0000", "#7f0000"),

		// miscellaneous
		mustLinear("jet",
			"#00007f", "#0000ff", "#007fff", "#00ffff", "#7fff7f", "#ffff00",
			"#ff7f00", "#ff0000", "#7f0000"),
		mustLinear("rainbow",
			"#8000ff", "#2c7ef7", "#2adddd", "#80ffb4", "#d4dd80", "#ff7e41", "#ff0000"),
		mustLinear("terrain",
			"#333399", "#0099ff", "#00cc66", "#ffff99", "#997f66", "#ffffff"),
		mustLinear("hsv", "#ff0000", "#ffff00", "#00ff00", "#00ffff", "#0000ff", "#ff00ff", "#ff0000"),
		mustLinear("cubehelix",
			"#000000", "#1a1530", "#163d4e", "#1f6642", "#54792f", "#a07949",
			"#d07e93", "#cf9cda", "#c1caf3", "#d2eeef", "#ffffff"),
		mustLinear("ocean", "#008000", "#004055", "#0000aa", "#0080ff", "#80ffff", "#ffffff"),
		mustLinear("pink", "#1e0000", "#8a5050", "#c08f80", "#d3bf9c", "#e8e8b6", "#ffffff"),
		mustLinear("afmhot", "#000000", "#800000", "#ff8000", "#ffff80", "#ffffff"),
		mustLinear("brg", "#0000ff", "#ff0000", "#00ff00"),
		mustLinear("binary", "#ffffff", "#000000"),
		mustLinear("Wistia", "#e4ff7a", "#ffe81a", "#ffbd00", "#ffa000", "#fc7f00"),
		mustLinear("gist_earth", "#000000", "#1f4c7a", "#3b8b5b", "#8da553", "#b8a06c", "#fdfbfb"),
		mustLinear("gist_gray", "#000000", "#ffffff"),
		mustLinear("gist_heat", "#000000", "#600000", "#bf0000", "#ff8000", "#ffffff"),
		mustLinear("gist_rainbow", "#ff0029", "#ffff00", "#00ff00", "#00ffff", "#0000ff", "#ff00bf"),
		mustLinear("gist_yarg", "#ffffff", "#000000"),
	}

	m := make(map[string]*Linear, len(maps))
	for _, cm := range maps {
		m[cm.Name()] = cm
	}
	return m
}()
