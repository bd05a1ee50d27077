// Package prompts отображает пару (предмет, формат материала) в фиксированную
// педагогическую инструкцию для LLM-провайдера. Чистая функция без ввода-вывода.
//
// Неизвестный формат намеренно сводится к шаблону "fiche" — это рабочее
// поведение по умолчанию, а не ошибка.
package prompts

import "fmt"

const preamble = "Tu es un expert pédagogue français spécialisé en %s pour les élèves de 3ème.\n"

// For возвращает системную инструкцию для заданного предмета и формата материала.
//
// Поддерживаемые форматы: fiche, qcm, flashcard, resume, trous.
// Любое другое значение возвращает шаблон fiche.
func For(subject, revisionType string) string {
	head := fmt.Sprintf(preamble, subject)
	switch revisionType {
	case "qcm":
		return head + `Crée un QCM de 10 questions avec:
- 4 réponses possibles (A, B, C, D)
- Une seule bonne réponse par question
- Des explications courtes après chaque réponse
À la fin, donne les réponses correctes.
Format clair et lisible en Markdown.`
	case "flashcard":
		return head + `Crée 10 flashcards de révision avec:
- RECTO: Question ou terme à définir
- VERSO: Réponse ou définition
Sépare chaque flashcard clairement.
Format en Markdown avec --- entre chaque carte.`
	case "resume":
		return head + `Crée un résumé synthétique avec:
- Les points essentiels à retenir
- Maximum 500 mots
- Structure claire avec titres
- Mots-clés en gras
Format en Markdown.`
	case "trous":
		return head + `Crée un exercice de texte à trous avec:
- 10-15 mots manquants (remplacés par _____)
- Un texte cohérent sur le sujet demandé
- La liste des mots à placer en désordre
- Les réponses à la fin
Format en Markdown.`
	default:
		return head + `Crée une fiche de révision claire et structurée avec:
- Un titre accrocheur
- Les notions clés en gras
- Des définitions simples
- Des exemples concrets
- Des astuces pour retenir
Utilise des emojis pour rendre la fiche attractive. Format en Markdown.`
	}
}
