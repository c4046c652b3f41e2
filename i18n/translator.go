package i18n

// Translator retrieves localized messages for Violation codes.
// data provides optional structured details to embed in the message (for
// example, "expected" or "found").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator. The English
// dictionary interpolates details so messages read like "expected one of
// [WKB], found \"WKT\""; the Japanese one stays terse.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	if t.lang == "ja" {
		switch code {
		case "invalid_type":
			return "型が不正です"
		case "required":
			return "必須プロパティが不足しています"
		case "invalid_enum":
			return "列挙値が不正です"
		case "invalid_length":
			return "長さが不正です"
		case "duplicate_item":
			return "要素が重複しています"
		case "too_short":
			return "短すぎます"
		case "invalid_name":
			return "名前が不正です"
		case "parse_error":
			return "解析エラー"
		}
		return code
	}
	switch code {
	case "invalid_type":
		return withFound("expected "+orDefault(data, "expected", "another type"), data)
	case "required":
		if k, ok := data["key"]; ok {
			return "required property " + quote(k) + " is missing"
		}
		return "required property missing"
	case "invalid_enum":
		return withFound("expected one of ["+data["expected"]+"]", data)
	case "invalid_length":
		return withFound("expected length of "+orDefault(data, "expected", "a fixed size"), data)
	case "duplicate_item":
		msg := "duplicate value"
		if v, ok := data["value"]; ok {
			msg += " " + quote(v)
		}
		if i, ok := data["index"]; ok {
			msg += " at index " + i
		}
		return msg
	case "too_short":
		return "too short"
	case "invalid_name":
		return "invalid name"
	case "parse_error":
		return "parse error"
	}
	return code
}

func withFound(msg string, data map[string]string) string {
	if f, ok := data["found"]; ok {
		return msg + ", found " + f
	}
	return msg
}

func orDefault(data map[string]string, key, def string) string {
	if v, ok := data[key]; ok && v != "" {
		return v
	}
	return def
}

func quote(s string) string { return "\"" + s + "\"" }

var currentTranslator Translator = dictTranslator{lang: "en"}

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	currentTranslator = dictTranslator{lang: lang}
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		currentTranslator = dictTranslator{lang: "en"}
		return
	}
	currentTranslator = tr
}

// T returns the message for code using the current Translator.
func T(code string, data map[string]string) string {
	return currentTranslator.Message(code, data)
}
