package models

type ContactInfo struct {
	Phone          string `json:"phone"`
	AlternatePhone string `json:"alternatePhone"`
	Email          string `json:"email"`
	WhatsApp       string `json:"whatsapp"`
	Address        string `json:"address"`
	MapURL         string `json:"mapUrl"`
}
