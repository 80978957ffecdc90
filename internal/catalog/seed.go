package catalog

import "github.com/DarlanCavalcante/tech10/internal/domain"

// Seed returns the default demo catalog the server starts with.
func Seed() []domain.Product {
	return []domain.Product{
		{
			ID:          1,
			Name:        "Smartphone XYZ",
			Description: "Smartphone de última geração com 128GB",
			Price:       1999.99,
			Image:       "https://via.placeholder.com/300x200?text=Smartphone",
			Stock:       10,
		},
		{
			ID:          2,
			Name:        "Notebook ABC",
			Description: "Notebook potente para trabalho e jogos",
			Price:       3499.99,
			Image:       "https://via.placeholder.com/300x200?text=Notebook",
			Stock:       5,
		},
		{
			ID:          3,
			Name:        "Fone de Ouvido Bluetooth",
			Description: "Fone sem fio com cancelamento de ruído",
			Price:       299.99,
			Image:       "https://via.placeholder.com/300x200?text=Fone",
			Stock:       20,
		},
		{
			ID:          4,
			Name:        "Mouse Gamer",
			Description: "Mouse com RGB e alta precisão",
			Price:       149.99,
			Image:       "https://via.placeholder.com/300x200?text=Mouse",
			Stock:       15,
		},
		{
			ID:          5,
			Name:        "Teclado Mecânico",
			Description: "Teclado mecânico RGB para gamers",
			Price:       399.99,
			Image:       "https://via.placeholder.com/300x200?text=Teclado",
			Stock:       8,
		},
	}
}
