package catalog

import "github.com/ersonp/story-core/internal/domain/entities"

func portugueseBundle() *Bundle {
	return &Bundle{
		Templates: []TemplatePair{
			{
				Title: "Um conto de {category}: {characters} em {setting}",
				Body: "No reino {setting_adjective} de {setting}, {characters} se viram no meio de uma história {category_adjective} de {category}. " +
					"Primeiro encontraram {element1}, e logo depois {pronoun} ficaram frente a frente com {element2}. " +
					"O que quer que tenha acontecido depois, aquela jornada {pronoun_object} mudou para sempre.",
			},
			{
				Title: "{characters} e o {category} {category_adjective} de {setting}",
				Body: "Ninguém esperava que {characters} mudassem o destino de {setting}. " +
					"Tudo começou com {element1}, um presságio de algo {category_adjective}. " +
					"Ao cair da noite, {pronoun} estavam diante de {element2}, e a cidade inteira prendeu a respiração.",
			},
			{
				Title: "{setting}, lugar {setting_adjective}: uma história de {category}",
				Body: "{characters} não pretendiam ficar muito tempo em {setting}, um lugar {setting_adjective}. " +
					"Mas {element1} mudou tudo, e este conto {category_adjective} de {category} estava só começando. " +
					"Antes do fim, {pronoun} encontrariam {element2}, e {setting} jamais {pronoun_object} esqueceria.",
			},
		},
		SettingAdjectives: []string{"antigo", "misterioso", "movimentado", "esquecido", "cintilante"},
		CategoryAdjectives: map[entities.Category]string{
			entities.CategoryAdventure: "emocionante",
			entities.CategoryRomance:   "comovente",
			entities.CategoryMystery:   "enigmático",
			entities.CategoryFantasy:   "mágico",
			entities.CategorySciFi:     "futurista",
			entities.CategoryHumor:     "hilariante",
			entities.CategoryFairyTale: "encantador",
		},
		Vocabulary: map[entities.Category]VocabularySet{
			entities.CategoryAdventure: {
				ElementsA: []string{"um velho mapa do tesouro 🗺️", "uma ponte de corda instável 🌉", "uma bússola que aponta para o perigo 🧭"},
				ElementsB: []string{"uma caverna escondida cheia de ecos 🕳️", "uma tempestade no horizonte ⛈️", "um explorador rival ressentido 🏴‍☠️"},
			},
			entities.CategoryRomance: {
				ElementsA: []string{"uma carta de amor nunca enviada 💌", "uma dança sob lanternas de papel 🏮", "um guarda-chuva dividido na chuva ☔"},
				ElementsB: []string{"um jardim de rosas florido 🌹", "uma promessa feita ao pôr do sol 🌅", "um olhar secreto do outro lado do salão 💞"},
			},
			entities.CategoryMystery: {
				ElementsA: []string{"um bilhete enigmático 📝", "uma gaveta trancada 🗝️", "pegadas recentes na poeira 👣"},
				ElementsB: []string{"uma relíquia desaparecida 💎", "uma vela que não ficava acesa 🕯️", "um estranho de casaco cinza 🕵️"},
			},
			entities.CategoryFantasy: {
				ElementsA: []string{"um corvo falante 🐦", "uma runa que brilhava à meia-noite ✨", "um ovo de dragão ainda morno 🥚"},
				ElementsB: []string{"uma floresta encantada 🌲", "a torre torta de um feiticeiro 🏰", "um portal tecido com luz das estrelas 🌌"},
			},
			entities.CategorySciFi: {
				ElementsA: []string{"um androide com defeito 🤖", "um sinal do espaço profundo 📡", "uma nave protótipo 🚀"},
				ElementsB: []string{"uma fenda no tempo ⏳", "uma colônia sob um céu vermelho 🪐", "um artefato alienígena zumbindo 👽"},
			},
			entities.CategoryHumor: {
				ElementsA: []string{"uma cabra muito confusa 🐐", "uma torta de creme com mira perfeita 🥧", "uma casca de banana no lugar errado 🍌"},
				ElementsB: []string{"um carrinho de supermercado desgovernado 🛒", "um show de talentos desastroso 🎤", "um campeonato de espirros 🤧"},
			},
			entities.CategoryFairyTale: {
				ElementsA: []string{"um sapatinho de cristal 👠", "um poço dos desejos 🪙", "uma velhinha gentil com uma cesta 🧺"},
				ElementsB: []string{"uma roca amaldiçoada 🧵", "um sapo que dizia ser príncipe 🐸", "uma casinha de gengibre 🏡"},
			},
		},
		Pronouns: PronounPair{Plural: "eles", PluralObject: "os"},
	}
}
