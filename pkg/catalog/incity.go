package catalog

import "github.com/Luckywi/EcoLyon/pkg/domain"

// LED 夜景の共通ベース。上部の矩形セクションに水平LEDラインが走る構図を固定します。
const (
	incityNightBase = "Night scene, dark blue night sky with soft 3D claymorphism clouds, " +
		"crescent moon visible in the sky, " +
		"the Incity tower with its rectangular top section displaying HORIZONTAL LED LIGHT LINES, " +
		"the cylindrical lower section with warm orange lit windows, " +
		"calm peaceful night atmosphere"

	incityFullmoonBase = "Night scene, dark blue night sky with soft 3D claymorphism clouds, " +
		"LARGE BRIGHT FULL MOON prominently visible in the sky casting silver moonlight, " +
		"the Incity tower with its rectangular top section displaying HORIZONTAL LED LIGHT LINES, " +
		"the cylindrical lower section with warm orange lit windows, " +
		"magical mystical full moon night atmosphere, moon reflecting on tower surface"
)

// ledTask は大気質インジケーター用のLEDカラー1色分のタスクを作ります。
// EcoLyon アプリの ATMO 指数カラー（cyan=良い 〜 purple=非常に悪い）に対応します。
func ledTask(base, id, filename, label, color, ledColor string) domain.Task {
	return domain.Task{
		ID:       id,
		Filename: filename,
		Fragment: base + ", the LED lines glowing in " + ledColor + " color",
		Label:    label,
		Color:    color,
	}
}

// incityScene はアンシティタワー（1:1, 29バリアント）のカタログです。
var incityScene = domain.Scene{
	Name:        SceneIncity,
	Label:       "INCITY Widget",
	AspectRatio: "1:1",
	OutputDir:   "output_incity",
	PromptPrefix: "Using the provided image of the Incity tower in Lyon, " +
		"modify ONLY the atmosphere and lighting. ",
	PromptGuard: "CRITICAL: Keep the EXACT same tower geometry, proportions, camera angle, " +
		"and claymorphism 3D style. " +
		"The tower structure, windows pattern, and architectural details must remain IDENTICAL. " +
		"Only change: sky color, lighting direction, weather effects, and LED colors on the tower facade.",
	Groups: []domain.Group{
		{
			Name:  "weather-day",
			Label: "Météo jour",
			Tasks: []domain.Task{
				{
					ID:       "clear_golden",
					Filename: "incity_clear_golden.png",
					Label:    "Golden Hour",
					Color:    "#F97316",
					Fragment: "Golden hour lighting, warm orange and pink sunset sky, " +
						"soft golden light reflecting on the tower glass facade, " +
						"dramatic long shadows, romantic warm atmosphere, " +
						"the tower lit by beautiful sunset colors",
				},
				{
					ID:       "clear_day",
					Filename: "incity_clear_day.png",
					Label:    "Jour Ensoleillé",
					Color:    "#3B82F6",
					Fragment: "Bright sunny midday, clear vivid blue sky, " +
						"strong direct sunlight, sharp shadows on the tower, " +
						"bright cheerful atmosphere, summer vibes, " +
						"the glass facade reflecting the blue sky",
				},
				{
					ID:       "partly_cloudy_day",
					Filename: "incity_partly_cloudy_day.png",
					Label:    "Partiellement Nuageux",
					Color:    "#60A5FA",
					Fragment: "Partly cloudy sky, mix of blue sky and white fluffy clouds, " +
						"sun visible between clouds, dynamic lighting with soft shadows, " +
						"pleasant weather, some clouds drifting across the sky, " +
						"the tower with alternating sun and cloud shadows",
				},
				{
					ID:       "cloudy_day",
					Filename: "incity_cloudy_day.png",
					Label:    "Nuageux",
					Color:    "#6B7280",
					Fragment: "Overcast grey sky, flat diffused lighting, " +
						"no direct shadows, soft grey clouds covering the sky, " +
						"muted colors, typical Lyon grey day atmosphere, " +
						"the tower under cloudy weather",
				},
				{
					ID:       "rain_day",
					Filename: "incity_rain_day.png",
					Label:    "Pluie",
					Color:    "#1E40AF",
					Fragment: "Rainy weather, dark grey stormy clouds, " +
						"visible rain drops falling, wet reflections on surfaces, " +
						"puddles on the ground, moody rainy atmosphere, " +
						"the tower during rainfall with glistening wet facade",
				},
				{
					ID:       "snow_day",
					Filename: "incity_snow_day.png",
					Label:    "Neige",
					Color:    "#94A3B8",
					Fragment: "Snowy winter day, white overcast sky, " +
						"snow falling gently, snow accumulation on surfaces, " +
						"cold blue-white atmosphere, winter wonderland, " +
						"the tower covered with snow on ledges",
				},
				{
					ID:       "storm_day",
					Filename: "incity_storm_day.png",
					Label:    "Orage",
					Color:    "#4C1D95",
					Fragment: "Dramatic thunderstorm, very dark ominous clouds, " +
						"lightning bolt visible in the sky, intense atmosphere, " +
						"dramatic contrast between dark sky and occasional light, " +
						"the tower during a powerful storm",
				},
			},
		},
		{
			Name:  "event-day",
			Label: "Événements jour",
			Tasks: []domain.Task{
				{
					ID:       "fete_lumieres_day",
					Filename: "incity_fete_lumieres_day.png",
					Label:    "Fête des Lumières",
					Color:    "#7B68EE",
					Fragment: "Early december day, pale winter sunlight, " +
						"sky with subtle purple and blue gradient hues, " +
						"the tower with faint colorful LED lights visible on facade even in daylight, " +
						"magical anticipation atmosphere, crisp cold air feeling",
				},
				{
					ID:       "noel_day",
					Filename: "incity_noel_day.png",
					Label:    "Noël",
					Color:    "#228B22",
					Fragment: "Christmas day, soft golden winter light, light snow falling, " +
						"sky with warm peachy pink winter clouds, " +
						"the tower with subtle green and red LED lights glowing softly on facade, " +
						"cozy magical Christmas morning atmosphere",
				},
				{
					ID:       "nouvel_an_day",
					Filename: "incity_nouvel_an_day.png",
					Label:    "Nouvel An",
					Color:    "#FFD700",
					Fragment: "New Year's day morning, bright crisp winter light, " +
						"sky with golden and champagne colored clouds, " +
						"the tower with faint golden sparkle LED lights on facade, " +
						"fresh hopeful new beginning atmosphere",
				},
				{
					ID:       "14_juillet_day",
					Filename: "incity_14_juillet_day.png",
					Label:    "14 Juillet",
					Color:    "#0055A4",
					Fragment: "Bastille Day, bright summer sun, " +
						"vivid blue sky with subtle white clouds forming tricolor effect, " +
						"the tower with faint blue white red LED accent lights on facade, " +
						"patriotic celebratory summer atmosphere",
				},
				{
					ID:       "halloween_day",
					Filename: "incity_halloween_day.png",
					Label:    "Halloween",
					Color:    "#FF7518",
					Fragment: "Halloween day, dramatic orange and purple sunset sky, " +
						"moody clouds with eerie autumn colors, " +
						"the tower with faint orange and purple LED lights glowing on facade, " +
						"mysterious spooky but fun atmosphere",
				},
				{
					ID:       "saint_valentin_day",
					Filename: "incity_saint_valentin_day.png",
					Label:    "Saint-Valentin",
					Color:    "#FF69B4",
					Fragment: "Valentine's day, soft romantic pink golden hour light, " +
						"sky with delicate pink and rose colored clouds, " +
						"the tower with subtle pink heart-shaped LED patterns glowing softly on facade, " +
						"romantic dreamy love atmosphere",
				},
			},
		},
		{
			Name:  "event-night",
			Label: "Événements nuit (LED spéciales)",
			Tasks: []domain.Task{
				{
					ID:       "fete_lumieres_night",
					Filename: "incity_fete_lumieres_night.png",
					Label:    "Fête des Lumières",
					Color:    "#8B5CF6",
					Fragment: "Night scene, dark blue sky with stars, " +
						"the Incity tower displaying SPECTACULAR COLORFUL LED LIGHT SHOW, " +
						"animated rainbow colors flowing on the facade, purple blue pink lights, " +
						"artistic light projections, Lyon Festival of Lights celebration, " +
						"magical luminous atmosphere, the tower as a beacon of colored lights",
				},
				{
					ID:       "noel_night",
					Filename: "incity_noel_night.png",
					Label:    "Noël",
					Color:    "#DC2626",
					Fragment: "Christmas night, dark starry sky, light snow falling, " +
						"the Incity tower displaying FESTIVE RED AND GREEN LED LIGHTS, " +
						"Christmas tree pattern made of green LEDs, red accents, " +
						"warm golden fairy lights, holiday spirit, " +
						"magical cozy Christmas atmosphere on the tower",
				},
				{
					ID:       "nouvel_an_night",
					Filename: "incity_nouvel_an_night.png",
					Label:    "Nouvel An",
					Color:    "#FBBF24",
					Fragment: "New Year's Eve night, fireworks exploding in the sky, " +
						"the Incity tower displaying GOLDEN AND WHITE SPARKLING LED ANIMATION, " +
						"shimmering golden lights cascading down the facade, " +
						"champagne gold and silver sparkles, celebratory atmosphere, " +
						"the tower glowing with festive golden light",
				},
				{
					ID:       "14_juillet_night",
					Filename: "incity_14_juillet_night.png",
					Label:    "14 Juillet",
					Color:    "#1D4ED8",
					Fragment: "Bastille Day night, fireworks in the background, " +
						"the Incity tower displaying FRENCH FLAG COLORS in LED lights, " +
						"blue white red vertical stripes illuminating the facade, " +
						"patriotic tricolor lighting, national celebration, " +
						"the tower proudly showing bleu blanc rouge",
				},
				{
					ID:       "halloween_night",
					Filename: "incity_halloween_night.png",
					Label:    "Halloween",
					Color:    "#EA580C",
					Fragment: "Halloween night, full moon visible, spooky atmosphere, " +
						"the Incity tower displaying ORANGE AND PURPLE LED LIGHTS, " +
						"jack-o-lantern face pattern in orange LEDs, purple accents, " +
						"eerie glow, bats silhouettes near the tower, " +
						"spooky but fun Halloween lighting",
				},
				{
					ID:       "saint_valentin_night",
					Filename: "incity_saint_valentin_night.png",
					Label:    "Saint-Valentin",
					Color:    "#DB2777",
					Fragment: "Valentine's night, romantic starry sky, " +
						"the Incity tower displaying PINK AND RED HEART-SHAPED LED PATTERNS, " +
						"multiple hearts made of pink LEDs flowing up the facade, " +
						"romantic rose-colored glow, love atmosphere, " +
						"the tower as a symbol of love with heart lights",
				},
			},
		},
		{
			Name:  "led-night",
			Label: "Nuit - LED Qualité Air",
			Tasks: []domain.Task{
				ledTask(incityNightBase, "night_cyan", "incity_night_cyan.png", "Cyan (Bon)", "#50F0E6", "bright cyan turquoise"),
				ledTask(incityNightBase, "night_green", "incity_night_green.png", "Vert (Moyen)", "#50CCAA", "mint green teal"),
				ledTask(incityNightBase, "night_yellow", "incity_night_yellow.png", "Jaune (Dégradé)", "#F0E641", "bright yellow"),
				ledTask(incityNightBase, "night_red", "incity_night_red.png", "Rouge (Mauvais)", "#E63A52", "vivid red coral"),
				ledTask(incityNightBase, "night_purple", "incity_night_purple.png", "Violet (Très Mauvais)", "#872181", "deep purple magenta"),
			},
		},
		{
			Name:  "led-fullmoon",
			Label: "Pleine Lune - LED Qualité Air",
			Tasks: []domain.Task{
				ledTask(incityFullmoonBase, "fullmoon_cyan", "incity_fullmoon_cyan.png", "Cyan (Bon)", "#50F0E6", "bright cyan turquoise"),
				ledTask(incityFullmoonBase, "fullmoon_green", "incity_fullmoon_green.png", "Vert (Moyen)", "#50CCAA", "mint green teal"),
				ledTask(incityFullmoonBase, "fullmoon_yellow", "incity_fullmoon_yellow.png", "Jaune (Dégradé)", "#F0E641", "bright yellow"),
				ledTask(incityFullmoonBase, "fullmoon_red", "incity_fullmoon_red.png", "Rouge (Mauvais)", "#E63A52", "vivid red coral"),
				ledTask(incityFullmoonBase, "fullmoon_purple", "incity_fullmoon_purple.png", "Violet (Très Mauvais)", "#872181", "deep purple magenta"),
			},
		},
	},
}
