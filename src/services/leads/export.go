package leads

import (
	"bytes"
	"encoding/csv"
	"strings"
	"time"

	"github.com/studiosalgoforge-stack/AlgoForgestudios-sub000/src/models"
)

// WriteLeadsCSV renders leads as CSV for the admin export download.
// encoding/csv handles quoting, so names and notes containing commas or
// quotes survive the round trip. The BOM keeps Excel happy with UTF-8.
func WriteLeadsCSV(leads []models.Lead) ([]byte, error) {
	var buf bytes.Buffer
	buf.Write([]byte{0xEF, 0xBB, 0xBF})

	cw := csv.NewWriter(&buf)
	cw.UseCRLF = true

	header := []string{"name", "email", "phone", "formType", "experienceLevel", "goal", "availability", "preferredTime", "interests", "notes", "createdAt"}
	if err := cw.Write(header); err != nil {
		return nil, err
	}

	for _, lead := range leads {
		row := []string{
			lead.Name,
			lead.Email,
			lead.Phone,
			lead.FormType,
			lead.ExperienceLevel,
			lead.Goal,
			lead.Availability,
			lead.PreferredTime,
			strings.Join(lead.Interests, "; "),
			lead.Notes,
			lead.CreatedAt.Format(time.RFC3339),
		}
		if err := cw.Write(row); err != nil {
			return nil, err
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
