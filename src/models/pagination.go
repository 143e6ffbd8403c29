package models

// ListParams เก็บค่า skip/limit สำหรับรายการแบบแบ่งหน้า. The catalog frontend
// paginates with raw skip/limit rather than page numbers.
type ListParams struct {
	Skip  int64 `json:"skip" query:"skip" example:"0"`
	Limit int64 `json:"limit" query:"limit" example:"20"`
}

// Clamp normalizes out-of-range values. A zero limit means "no limit" for
// admin listings, which operate on small collections.
func (p *ListParams) Clamp(maxLimit int64) {
	if p.Skip < 0 {
		p.Skip = 0
	}
	if p.Limit < 0 {
		p.Limit = 0
	}
	if maxLimit > 0 && p.Limit > maxLimit {
		p.Limit = maxLimit
	}
}
