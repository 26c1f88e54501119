// Package morph provides a best-effort prepositional-case transformation
// for Russian city names. It is a lookup table with suffix fallback rules,
// not a grammatical model: unknown names get an approximation.
package morph

import "strings"

// prepositional holds known forms answering "в чём? где?".
var prepositional = map[string]string{
	// Города
	"москва":           "Москве",
	"санкт-петербург":  "Санкт-Петербурге",
	"петербург":        "Петербурге",
	"казань":           "Казани",
	"екатеринбург":     "Екатеринбурге",
	"новосибирск":      "Новосибирске",
	"нижний новгород":  "Нижнем Новгороде",
	"самара":           "Самаре",
	"омск":             "Омске",
	"челябинск":        "Челябинске",
	"ростов-на-дону":   "Ростове-на-Дону",
	"уфа":              "Уфе",
	"красноярск":       "Красноярске",
	"воронеж":          "Воронеже",
	"пермь":            "Перми",
	"волгоград":        "Волгограде",
	"краснодар":        "Краснодаре",
	"саратов":          "Саратове",
	"тюмень":           "Тюмени",
	"тольятти":         "Тольятти",
	"ижевск":           "Ижевске",
	"барнаул":          "Барнауле",
	"ульяновск":        "Ульяновске",
	"иркутск":          "Иркутске",
	"хабаровск":        "Хабаровске",
	"ярославль":        "Ярославле",
	"владивосток":      "Владивостоке",
	"махачкала":        "Махачкале",
	"томск":            "Томске",
	"оренбург":         "Оренбурге",
	"кемерово":         "Кемерово",
	"новокузнецк":      "Новокузнецке",
	"рязань":           "Рязани",
	"астрахань":        "Астрахани",
	"набережные челны": "Набережных Челнах",
	"пенза":            "Пензе",
	"киров":            "Кирове",
	"липецк":           "Липецке",
	"чебоксары":        "Чебоксарах",
	"калининград":      "Калининграде",
	"тула":             "Туле",
	"сочи":             "Сочи",
	"ставрополь":       "Ставрополе",
	"курск":            "Курске",
	"улан-удэ":         "Улан-Удэ",
	"тверь":            "Твери",
	"магнитогорск":     "Магнитогорске",
	"иваново":          "Иваново",
	"брянск":           "Брянске",
	"белгород":         "Белгороде",
	"сургут":           "Сургуте",
	"владимир":         "Владимире",
	"нижний тагил":     "Нижнем Тагиле",
	"архангельск":      "Архангельске",
	"чита":             "Чите",
	"калуга":           "Калуге",
	"смоленск":         "Смоленске",
	"волжский":         "Волжском",
	"якутск":           "Якутске",
	"саранск":          "Саранске",
	"череповец":        "Череповце",
	"вологда":          "Вологде",
	"владикавказ":      "Владикавказе",
	"грозный":          "Грозном",
	"мурманск":         "Мурманске",
	"тамбов":           "Тамбове",
	"петрозаводск":     "Петрозаводске",
	"кострома":         "Костроме",
	"орел":             "Орле",
	"новороссийск":     "Новороссийске",
	"йошкар-ола":       "Йошкар-Оле",

	// Страны
	"россия":    "России",
	"украина":   "Украине",
	"беларусь":  "Беларуси",
	"казахстан": "Казахстане",
}

// feminineEndings are the -а endings folded to -е.
var feminineEndings = []string{
	"ва", "на", "ка", "га", "ха", "ча", "ща", "ра", "ла", "ма", "па", "та", "да",
}

// Prepositional returns word in the prepositional case. Known names come
// from the lookup table; everything else goes through suffix rules and may
// be grammatically off for irregular names.
func Prepositional(word string) string {
	lower := strings.ToLower(word)

	if form, ok := prepositional[lower]; ok {
		return form
	}

	switch {
	case strings.HasSuffix(lower, "бург"):
		return word + "е"
	case strings.HasSuffix(lower, "ск"):
		return word + "е"
	case strings.HasSuffix(lower, "град"):
		return word + "е"
	}

	// Hyphenated compounds decline the last part.
	if strings.Contains(word, "-") {
		parts := strings.Split(word, "-")
		parts[len(parts)-1] = Prepositional(parts[len(parts)-1])
		return strings.Join(parts, "-")
	}

	for _, ending := range feminineEndings {
		if strings.HasSuffix(lower, ending) {
			return trimLastRune(word) + "е"
		}
	}
	if strings.HasSuffix(lower, "я") {
		return trimLastRune(word) + "е"
	}
	if strings.HasSuffix(lower, "ь") {
		return trimLastRune(word) + "и"
	}
	for _, ending := range []string{"во", "ко", "но", "ро", "ло", "то", "е"} {
		if strings.HasSuffix(lower, ending) {
			return word
		}
	}

	return word + "е"
}

func trimLastRune(s string) string {
	runes := []rune(s)
	if len(runes) == 0 {
		return s
	}
	return string(runes[:len(runes)-1])
}
