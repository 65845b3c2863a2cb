package services

import (
	"strings"

	"github.com/hyerinam29-hash/my-face-landing/internal/model"
)

// ProductService serves the recommendation catalog. The catalog is
// editorial content curated per routine step, not store data.
type ProductService struct {
	catalog []model.ProductCategory
}

func NewProductService() *ProductService {
	return &ProductService{catalog: catalog}
}

// Catalog returns every category.
func (s *ProductService) Catalog() []model.ProductCategory {
	return s.catalog
}

// Search filters the catalog by product name.
func (s *ProductService) Search(query string) []model.ProductCategory {
	query = strings.TrimSpace(query)
	if query == "" {
		return s.catalog
	}

	out := make([]model.ProductCategory, 0, len(s.catalog))
	for _, cat := range s.catalog {
		var items []model.Product
		for _, p := range cat.Items {
			if strings.Contains(p.Name, query) {
				items = append(items, p)
			}
		}
		if len(items) > 0 {
			out = append(out, model.ProductCategory{Category: cat.Category, Label: cat.Label, Items: items})
		}
	}
	return out
}

// Find returns the catalog entry with the given name.
func (s *ProductService) Find(name string) (*model.Product, bool) {
	for _, cat := range s.catalog {
		for _, p := range cat.Items {
			if p.Name == name {
				return &p, true
			}
		}
	}
	return nil, false
}

var catalog = []model.ProductCategory{
	{
		Category: "cleanser",
		Label:    "클렌저",
		Items: []model.Product{
			{Name: "약산성 폼 클렌저", Image: "https://image.oliveyoung.co.kr/cfimages/cf-goods/uploads/images/thumbnails/550/10/0000/0014/A00000014840816ko.jpg?l=ko", Price: "21,000원", Volume: "250ml"},
			{Name: "저자극 젤 클렌저", Image: "https://image.oliveyoung.co.kr/cfimages/cf-goods/uploads/images/thumbnails/550/10/0000/0018/A00000018496714ko.jpg?l=ko", Price: "19,200원", Volume: "200ml"},
			{Name: "클렌징 밤", Image: "https://image.oliveyoung.co.kr/cfimages/cf-goods/uploads/images/thumbnails/550/10/0000/0020/A00000020247241ko.jpg?l=ko", Price: "19,900원", Volume: "90ml"},
			{Name: "오일 클렌저", Image: "https://image.oliveyoung.co.kr/cfimages/cf-goods/uploads/images/thumbnails/550/10/0000/0018/A00000018637710ko.jpg?l=ko", Price: "46,000원", Volume: "275ml"},
		},
	},
	{
		Category: "toner",
		Label:    "토너",
		Items: []model.Product{
			{Name: "수분 밸런싱 토너", Image: "https://image.oliveyoung.co.kr/cfimages/cf-goods/uploads/images/thumbnails/550/10/0000/0021/A00000021279202ko.jpg?l=ko", Price: "19,900원", Volume: "150ml"},
			{Name: "AHA 각질 토너", Image: "https://velloaskin.com/web/product/big/202105/6bc581b2f445cfddbb3193ab3eae67aa.jpg", Price: "30,000원", Volume: "150ml"},
			{Name: "저자극 진정 토너", Image: "https://amarda.co.kr/web/product/medium/202504/708658eb3e0bd05a278785cdd27de4e1.png", Price: "28,000원", Volume: "200ml"},
			{Name: "BHA 수렴 토너", Image: "https://images.unsplash.com/photo-1750085036912-b4bff0ddcd77", Price: "32,000원", Volume: "150ml"},
		},
	},
	{
		Category: "serum",
		Label:    "세럼",
		Items: []model.Product{
			{Name: "히알루론산 수분 세럼", Image: "https://images.unsplash.com/photo-1685137562352-5db6e7495538", Price: "35,000원", Volume: "50ml"},
			{Name: "니아신아마이드 균일 세럼", Image: "https://images.unsplash.com/photo-1608326389514-d9d2514e1933", Price: "40,000원", Volume: "30ml"},
			{Name: "비타민C 브라이트닝 세럼", Image: "https://images.unsplash.com/photo-1648139347040-857f024f8da4", Price: "45,000원", Volume: "30ml"},
			{Name: "펩타이드 리프팅 세럼", Image: "https://images.unsplash.com/photo-1618120508902-c8d05e7985ee", Price: "55,000원", Volume: "30ml"},
		},
	},
	{
		Category: "cream",
		Label:    "크림",
		Items: []model.Product{
			{Name: "세라마이드 장벽 크림", Image: "https://images.unsplash.com/photo-1728994062543-74a1dc2c9392", Price: "38,000원", Volume: "50ml"},
			{Name: "라이트 젤 크림", Image: "https://images.unsplash.com/photo-1696881694567-cd1a97958fc8", Price: "32,000원", Volume: "50ml"},
			{Name: "리치 밤 크림", Image: "https://images.unsplash.com/photo-1605204768985-81bad5fd9d79", Price: "42,000원", Volume: "50ml"},
			{Name: "수분 크림", Image: "https://images.unsplash.com/photo-1638609927040-8a7e97cd9d6a", Price: "28,000원", Volume: "50ml"},
		},
	},
	{
		Category: "sunscreen",
		Label:    "선크림",
		Items: []model.Product{
			{Name: "논나노 무기자차", Image: "https://images.unsplash.com/photo-1681916815996-9fdc49fe489a", Price: "25,000원", Volume: "50ml"},
			{Name: "워터프루프 유기자차", Image: "https://images.unsplash.com/photo-1600110116536-7a98859a927c", Price: "28,000원", Volume: "50ml"},
			{Name: "톤업 선크림", Image: "https://images.unsplash.com/photo-1543364148-c43c4e908f47", Price: "30,000원", Volume: "50ml"},
			{Name: "민감성 피부용 선크림", Image: "https://images.unsplash.com/photo-1751821195194-0bbc1caab446", Price: "32,000원", Volume: "50ml"},
		},
	},
}
