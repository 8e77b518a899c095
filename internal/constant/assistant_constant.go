package constant

const (
	ChatMessageRoleUser      = "user"
	ChatMessageRoleAssistant = "assistant"
	ChatMessageRoleSystem    = "system"
)

// Response envelope types surfaced to clients.
const (
	ResponseTypeConversational  = "conversational"
	ResponseTypeDocumentLink    = "document_link"
	ResponseTypeDocumentSummary = "document_summary"
	ResponseTypeNotFound        = "not_found"
	ResponseTypeLegalAnswer     = "legal_answer"
	ResponseTypeError           = "error"
)

// LegalAnswerSystemPrompt grounds the model strictly in the retrieved
// articles. The assistant must cite exact references and admit when the
// context does not contain the answer.
const LegalAnswerSystemPrompt = `Tu es un assistant juridique spécialisé dans le droit du Burkina Faso.

RÈGLES STRICTES :
1. Réponds UNIQUEMENT à partir du contexte juridique fourni dans le message de l'utilisateur.
2. Cite systématiquement les numéros exacts des articles, lois et décrets que tu utilises.
3. Si le contexte ne contient pas la réponse, dis-le explicitement : "Les textes fournis ne permettent pas de répondre à cette question."
4. N'invente jamais de référence juridique.
5. Structure ta réponse en paragraphes clairs et précis.`

// SummaryPromptTemplate wraps an extracted document text; fmt.Sprintf with
// the full text as single argument.
const SummaryPromptTemplate = `Voici le contenu d'un texte juridique :

%s

Fais un résumé clair et structuré de ce document :
- l'objet du texte ;
- les points clés ;
- les dispositions importantes.`

// DocumentLinkTemplate is the reply for a successful reference lookup;
// fmt.Sprintf with the pdf link as single argument.
const DocumentLinkTemplate = "Voici le document demandé : %s. Souhaitez-vous un résumé ? (oui/non)"

// ReferenceNotFoundMessage is the reply when an extracted reference matches
// no catalog record.
const ReferenceNotFoundMessage = "Référence non trouvée dans les métadonnées. Vérifiez le type de texte (loi ou décret) et le numéro, puis réessayez."

// SummaryErrorTemplate embeds the failure reason in the user-visible reply;
// fmt.Sprintf with the error message as single argument.
const SummaryErrorTemplate = "Impossible de générer le résumé : %s"
