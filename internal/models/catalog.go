// Package models содержит фиксированные справочники предметов и форматов
// материалов, отдаваемые фронтенду как есть.
package models

// Subject — элемент справочника школьных предметов.
type Subject struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}

// RevisionTypeInfo — элемент справочника форматов учебного материала.
type RevisionTypeInfo struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Subjects возвращает фиксированный список из десяти предметов.
func Subjects() []Subject {
	return []Subject{
		{ID: "maths", Name: "Mathématiques", Icon: "calculator"},
		{ID: "francais", Name: "Français", Icon: "book-open"},
		{ID: "histoire-geo", Name: "Histoire-Géographie", Icon: "globe"},
		{ID: "emc", Name: "EMC", Icon: "users"},
		{ID: "svt", Name: "SVT", Icon: "leaf"},
		{ID: "physique-chimie", Name: "Physique-Chimie", Icon: "flask-conical"},
		{ID: "anglais", Name: "Anglais", Icon: "languages"},
		{ID: "espagnol", Name: "Espagnol", Icon: "languages"},
		{ID: "musique", Name: "Musique", Icon: "music"},
		{ID: "arts-plastiques", Name: "Arts Plastiques", Icon: "palette"},
	}
}

// RevisionTypes возвращает фиксированный список из пяти форматов материала.
func RevisionTypes() []RevisionTypeInfo {
	return []RevisionTypeInfo{
		{ID: "fiche", Name: "Fiche de révision", Description: "Résumé structuré des notions clés"},
		{ID: "qcm", Name: "QCM", Description: "Questions à choix multiples pour s'entraîner"},
		{ID: "flashcard", Name: "Flashcards", Description: "Cartes recto-verso pour mémoriser"},
		{ID: "resume", Name: "Résumé", Description: "Synthèse courte et efficace"},
		{ID: "trous", Name: "Texte à trous", Description: "Exercice de complétion"},
	}
}
