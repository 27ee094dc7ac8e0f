package i18n

import "strings"

// Lang is a supported interface language.
type Lang string

const (
	LangEN   Lang = "en"
	LangPTBR Lang = "pt-br"
)

// Resolve maps a sender's locale tag to a supported language.
// Any "pt" tag (bare or with a region, any case) resolves to
// Portuguese-Brazil, everything else to English.
func Resolve(localeTag string) Lang {
	if strings.HasPrefix(strings.ToLower(localeTag), "pt") {
		return LangPTBR
	}
	return LangEN
}

// Lookup returns the translation of key for lang. Unknown keys come
// back unchanged, so a missing translation degrades to the key itself
// instead of failing the update.
func Lookup(lang Lang, key string) string {
	if value, ok := translations[lang][key]; ok {
		return value
	}
	return key
}

// Keys lists every message key present for lang.
func Keys(lang Lang) []string {
	keys := make([]string, 0, len(translations[lang]))
	for key := range translations[lang] {
		keys = append(keys, key)
	}
	return keys
}

var translations = map[Lang]map[string]string{
	LangPTBR: {
		"start_message":           "Bem-vindo(a)!\nCom este bot você pode ler e gerar QR Codes. Envie-me um texto, vou convertê-lo em QR Code!",
		"help_message":            "Como usar o bot:\n\n• <b>Envie um texto:</b> Basta enviar uma mensagem de texto e o bot irá gerar um QR Code com o conteúdo fornecido.\n• <b>Envie uma foto:</b> Se enviar uma foto contendo um QR Code, o bot irá ler o QR Code da imagem e retornar o conteúdo que está codificado nele.\n\nNão há comandos específicos. Apenas envie o texto ou a foto que deseja transformar em um QR Code.",
		"privacy_message":         "Este bot não armazena nenhum dado do usuário.",
		"privacy_btn":             "Política de Privacidade da Likn",
		"privacy_link":            "https://privacy.likn.com.br/qrcodenextbot/privacidade",
		"dev_message":             "Desenvolvido por @RibasSu.",
		"dev_btn":                 "Likn & Cia.",
		"dev_link":                "https://likn.com.br/pt-br/",
		"qrcode_message":          "Aqui está seu QR Code!",
		"qrcode_btn_text":         "Link do QR Code",
		"error_generate_qrcode":   "Desculpe, ocorreu um erro ao gerar o QR Code.",
		"error_read_qrcode":       "Não consegui ler o QR Code na imagem. Tente enviar uma imagem mais clara.",
		"error_processing_qrcode": "Ocorreu um erro ao tentar ler o QR Code da imagem.",
		"qrcode_content":          "O QR Code contém: ",
	},
	LangEN: {
		"start_message":           "Welcome!\nWith this bot, you can read and generate QR Codes. Send me a text, and I will convert it into a QR Code!",
		"help_message":            "How to use the bot:\n\n• <b>Send a text:</b> Just send a text message, and the bot will generate a QR Code with the provided content.\n• <b>Send a photo:</b> If you send a photo containing a QR Code, the bot will read the QR Code from the image and return the content encoded in it.\n\nThere are no specific commands. Just send the text or the photo you want to convert into a QR Code.",
		"privacy_message":         "This bot does not store any user data.",
		"privacy_btn":             "Likn Privacy Policy",
		"privacy_link":            "https://privacy.likn.com.br/qrcodenextbot/privacy",
		"dev_message":             "Developed by @RibasSu.",
		"dev_btn":                 "Likn & Co.",
		"dev_link":                "https://likn.com.br/",
		"qrcode_message":          "Here is your QR Code!",
		"qrcode_btn_text":         "QR Code Link",
		"error_generate_qrcode":   "Sorry, there was an error generating the QR Code.",
		"error_read_qrcode":       "I couldn't read the QR Code in the image. Please try sending a clearer image.",
		"error_processing_qrcode": "There was an error trying to read the QR Code from the image.",
		"qrcode_content":          "The QR Code contains: ",
	},
}
