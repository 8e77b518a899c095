package constant

// ConversationalTemplates are the reply pools for small-talk turns, keyed
// by classifier category. One entry is picked at random per turn.
var ConversationalTemplates = map[string][]string{
	"greeting": {
		"Bonjour ! Je suis votre assistant juridique pour le droit du Burkina Faso. Comment puis-je vous aider ?",
		"Bonjour ! Posez-moi une question sur les lois et décrets du Burkina Faso.",
		"Salut ! Je peux rechercher un texte juridique ou répondre à vos questions de droit burkinabè.",
	},
	"thanks": {
		"Avec plaisir ! N'hésitez pas si vous avez d'autres questions juridiques.",
		"Je vous en prie. Je reste disponible pour toute autre question.",
	},
	"goodbye": {
		"Au revoir ! Revenez quand vous voulez pour vos questions juridiques.",
		"Bonne journée ! À bientôt.",
	},
	"identity": {
		"Je suis un assistant juridique spécialisé dans le droit du Burkina Faso. Je peux retrouver une loi ou un décret, le résumer, ou répondre à vos questions à partir des textes officiels.",
		"Je vais bien, merci ! Je suis là pour répondre à vos questions sur les lois et décrets du Burkina Faso.",
	},
	"default": {
		"Très bien. Que souhaitez-vous savoir sur le droit du Burkina Faso ?",
		"D'accord. Je reste à votre écoute pour vos questions juridiques.",
	},
}
