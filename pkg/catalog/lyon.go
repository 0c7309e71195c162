package catalog

import "github.com/Luckywi/EcoLyon/pkg/domain"

// 季節と時間帯のマトリクスは元アプリのボタン配置をそのまま写しています。
// 断片の組み立て規則（"季節, 時間帯"）を変えるとファイル名との対応が崩れるため注意。
type lyonSeason struct {
	id       string
	label    string
	fragment string
}

var lyonSeasons = []lyonSeason{
	{"spring", "Printemps", "spring, light green trees, pink cherry blossoms, flowers"},
	{"summer", "Été", "summer, vibrant dark green trees, blue sky"},
	{"autumn", "Automne", "autumn, orange red yellow trees, fall foliage"},
	{"winter", "Hiver", "winter, naked trees, brown branches"},
}

const lyonSnowBase = "heavy snow covering the city, white roof tops, frozen river, winter"

func lyonClearSkyTasks() []domain.Task {
	times := []struct {
		id       string
		label    string
		fragment string
	}{
		{"day", "Jour", "bright sunlight, clear blue sky, sharp shadows"},
		{"golden", "Golden", "golden hour sunset, warm orange sky"},
		{"night", "Nuit", "night time, dark blue sky, street lights glowing"},
	}

	var tasks []domain.Task
	for _, s := range lyonSeasons {
		for _, t := range times {
			tasks = append(tasks, domain.Task{
				ID:       s.id + "_" + t.id,
				Filename: "A_" + s.id + "_" + t.id + ".png",
				Fragment: s.fragment + ", " + t.fragment,
				Label:    s.label + " " + t.label,
			})
		}
	}
	return tasks
}

// seasonalPair は季節ごとに昼/夜の2タスクを持つグループ（gris, pluie）を展開します。
func lyonSeasonalPairTasks(prefix, suffix, dayFragment, nightFragment, dayColor, nightColor string) []domain.Task {
	var tasks []domain.Task
	for _, s := range lyonSeasons {
		tasks = append(tasks,
			domain.Task{
				ID:       s.id + "_" + suffix + "_day",
				Filename: prefix + "_" + s.id + "_" + suffix + "_day.png",
				Fragment: s.fragment + ", " + dayFragment,
				Label:    s.label + " Jour",
				Color:    dayColor,
			},
			domain.Task{
				ID:       s.id + "_" + suffix + "_night",
				Filename: prefix + "_" + s.id + "_" + suffix + "_night.png",
				Fragment: s.fragment + ", " + nightFragment,
				Label:    s.label + " Nuit",
				Color:    nightColor,
			},
		)
	}
	return tasks
}

func lyonStormTasks() []domain.Task {
	var tasks []domain.Task
	for _, s := range lyonSeasons {
		tasks = append(tasks, domain.Task{
			ID:       "storm_" + s.id,
			Filename: "E_storm_" + s.id + ".png",
			Fragment: s.fragment + ", thunderstorm, lightning, dark sky",
			Label:    "Orage " + s.label,
			Color:    "#5E35B1",
		})
	}
	return tasks
}

// lyonScene はリヨン都市景観（16:9, 47バリアント）のカタログです。
var lyonScene = domain.Scene{
	Name:        SceneLyon,
	Label:       "Lyon Weather",
	AspectRatio: "16:9",
	OutputDir:   "output_lyon_gemini3",
	PromptPrefix: "Using the provided image of Lyon city, " +
		"modify the scene to match this weather condition: ",
	PromptGuard: "Keep the exact same buildings geometry, camera angle, and claymorphism style. " +
		"Only change the lighting, sky, ground texture, and foliage colors.",
	Groups: []domain.Group{
		{
			Name:  "clear-sky",
			Label: "Beau temps (ciel dégagé)",
			Tasks: lyonClearSkyTasks(),
		},
		{
			Name:  "grey",
			Label: "Gris / Nuageux",
			Tasks: lyonSeasonalPairTasks("B", "grey",
				"overcast grey sky, flat lighting",
				"night, cloudy sky",
				"gray", "#333"),
		},
		{
			Name:  "rain",
			Label: "Pluie",
			Tasks: lyonSeasonalPairTasks("C", "rain",
				"rainy weather, wet ground reflections",
				"rainy night, wet streets",
				"#4285F4", "#0F3678"),
		},
		{
			Name:  "snow",
			Label: "Neige",
			Tasks: []domain.Task{
				{
					ID:       "snow_day",
					Filename: "D_snow_day.png",
					Fragment: lyonSnowBase + ", daylight",
					Label:    "Neige Jour",
					Color:    "#AEC6CF",
				},
				{
					ID:       "snow_golden",
					Filename: "D_snow_golden.png",
					Fragment: lyonSnowBase + ", sunset light",
					Label:    "Neige Golden",
					Color:    "#D4AF37",
				},
				{
					ID:       "snow_night",
					Filename: "D_snow_night.png",
					Fragment: lyonSnowBase + ", night time",
					Label:    "Neige Nuit",
					Color:    "#2C3E50",
				},
			},
		},
		{
			Name:  "storm",
			Label: "Orages",
			Tasks: lyonStormTasks(),
		},
		{
			Name:  "event-day",
			Label: "Événements spéciaux (jour)",
			Tasks: []domain.Task{
				{
					ID:       "fete_lumieres_day",
					Filename: "F_fete_lumieres_day.png",
					Label:    "Fête des Lumières",
					Color:    "#7B68EE",
					Fragment: "early december, clear pale blue winter sky, bright cold daylight, " +
						"no snow on ground, bare trees, festive banners hanging on lampposts, " +
						"colorful light installations visible on buildings but turned off during day, " +
						"projection screens being set up, anticipation atmosphere, crisp winter air",
				},
				{
					ID:       "noel_day",
					Filename: "F_noel_day.png",
					Label:    "Noël",
					Color:    "#228B22",
					Fragment: "winter, light snow on rooftops, clear cold sky, bright winter sun, " +
						"Christmas decorations on streets, festive garlands, " +
						"Christmas market stalls with red roofs, decorated Christmas trees, " +
						"warm cozy atmosphere, holiday spirit",
				},
				{
					ID:       "nouvel_an_day",
					Filename: "F_nouvel_an_day.png",
					Label:    "Nouvel An",
					Color:    "#FFD700",
					Fragment: "winter, clear bright sky, festive decorations still up, " +
						"New Year preparations, champagne bottles visible, " +
						"party atmosphere building up, end of year vibes, " +
						"people preparing celebrations",
				},
				{
					ID:       "14_juillet_day",
					Filename: "F_14_juillet_day.png",
					Label:    "14 Juillet",
					Color:    "#0055A4",
					Fragment: "summer, bright sunny day, clear blue sky, " +
						"French tricolor flags bleu blanc rouge everywhere, " +
						"Bastille Day celebration, military parade atmosphere, " +
						"patriotic decorations, festive national holiday",
				},
				{
					ID:       "halloween_day",
					Filename: "F_halloween_day.png",
					Label:    "Halloween",
					Color:    "#FF7518",
					Fragment: "late autumn, overcast mysterious sky with dramatic clouds, " +
						"orange and brown fall colors, Halloween decorations, " +
						"carved pumpkins on doorsteps, spider webs, " +
						"eerie but playful atmosphere, bare trees",
				},
				{
					ID:       "saint_valentin_day",
					Filename: "F_saint_valentin_day.png",
					Label:    "Saint-Valentin",
					Color:    "#FF69B4",
					Fragment: "mid february, soft romantic winter light, clear pale blue sky, " +
						"Valentine's Day decorations on streets, red and pink heart garlands " +
						"hanging between buildings, heart-shaped balloons tied to lampposts, " +
						"flower shop displays with red roses, no people close-up, " +
						"romantic city atmosphere, soft warm feeling",
				},
			},
		},
		{
			Name:  "event-night",
			Label: "Événements spéciaux (nuit)",
			Tasks: []domain.Task{
				{
					ID:       "fete_lumieres_night",
					Filename: "F_fete_lumieres_night.png",
					Label:    "Fête des Lumières",
					Color:    "#4B0082",
					Fragment: "winter night, spectacular light projections on Basilique de Fourvière, " +
						"colorful artistic illuminations on buildings, glowing light installations, " +
						"purple blue pink lights reflecting on Saône river, magical atmosphere, " +
						"Lyon Fête des Lumières festival, no snow",
				},
				{
					ID:       "noel_night",
					Filename: "F_noel_night.png",
					Label:    "Noël",
					Color:    "#8B0000",
					Fragment: "Christmas Eve night, clear starry sky, gentle snow falling, " +
						"warm glowing Christmas lights on buildings, illuminated Christmas trees, " +
						"golden fairy lights garlands, cozy warm windows glowing, " +
						"magical peaceful Christmas atmosphere, stars twinkling",
				},
				{
					ID:       "nouvel_an_night",
					Filename: "F_nouvel_an_night.png",
					Label:    "Nouvel An",
					Color:    "#FF4500",
					Fragment: "New Year's Eve midnight, spectacular fireworks over Fourvière, " +
						"colorful explosions in clear night sky, golden sparkles, " +
						"confetti falling, champagne celebration, " +
						"crowds cheering, Bonne Année banners, magical night",
				},
				{
					ID:       "14_juillet_night",
					Filename: "F_14_juillet_night.png",
					Label:    "14 Juillet",
					Color:    "#EF4135",
					Fragment: "Bastille Day night, spectacular fireworks in blue white red colors, " +
						"French flag colors illuminating the sky over Lyon, " +
						"tricolor lights on buildings, national celebration, " +
						"clear summer night, crowds watching fireworks",
				},
				{
					ID:       "halloween_night",
					Filename: "F_halloween_night.png",
					Label:    "Halloween",
					Color:    "#2D1B4E",
					Fragment: "Halloween night, full moon in clear dark sky, " +
						"spooky orange glow from jack-o-lanterns, " +
						"mysterious fog in streets, bats silhouettes, " +
						"purple and orange lights, haunted atmosphere but whimsical",
				},
				{
					ID:       "saint_valentin_night",
					Filename: "F_saint_valentin_night.png",
					Label:    "Saint-Valentin",
					Color:    "#C71585",
					Fragment: "Valentine's night, clear starry sky with soft pink hue, " +
						"romantic pink and red fairy lights on bridges over Saône river, " +
						"heart-shaped light decorations on buildings, " +
						"warm glowing restaurant windows in distance, " +
						"rose petals on ground, love atmosphere, no people close-up",
				},
			},
		},
	},
}
