package domain

type Supplier struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	ContactPerson string `json:"contact_person"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
}

type SuppliersResponse struct {
	Envelope
	Suppliers []Supplier `json:"suppliers"`
}

type SupplierResponse struct {
	Envelope
	Supplier *Supplier `json:"supplier"`
}

type SupplierRequest struct {
	Name          string `json:"name"`
	ContactPerson string `json:"contact_person"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	Address       string `json:"address"`
}

type Category struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	ItemCount Int    `json:"item_count"`
}

type CategoriesResponse struct {
	Envelope
	Categories []Category `json:"categories"`
}

type CategoryResponse struct {
	Envelope
	Category *Category `json:"category"`
}

type CategoryRequest struct {
	Name string `json:"name"`
}
