// Xuất báo cáo ra CSV.
package reportsvc

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/Wupani/satis-crm-sub001/internal/common"
)

// WriteSummaryCSV ghi báo cáo ra w dạng CSV nhiều section, mỗi section có
// dòng tiêu đề riêng. Lỗi ghi được gói về common.ErrExportFailed.
func WriteSummaryCSV(w io.Writer, summary *ReportSummary) error {
	writer := csv.NewWriter(w)

	writeAll := func(rows [][]string) error {
		for _, row := range rows {
			if err := writer.Write(row); err != nil {
				return fmt.Errorf("write csv row: %w", common.ErrExportFailed)
			}
		}
		return nil
	}

	header := [][]string{
		{"Rapor Dönemi", string(summary.Period)},
		{"Başlangıç", summary.Window.Start.Format("2006-01-02 15:04:05")},
		{"Bitiş", summary.Window.End.Format("2006-01-02 15:04:05")},
		{"Toplam Kayıt", strconv.Itoa(summary.Totals.Total)},
		{"Başarılı Satış", strconv.Itoa(summary.Totals.SuccessCount)},
		{"Dönüşüm Oranı (%)", formatRate(summary.Totals.ConversionRate)},
		{},
	}
	if err := writeAll(header); err != nil {
		return err
	}

	distributions := []struct {
		title   string
		buckets []DistributionBucket
	}{
		{"Kanal Dağılımı", summary.ByChannel},
		{"Arama Durumu Dağılımı", summary.ByCallStatus},
		{"Arama Detayı Dağılımı", summary.ByCallDetail},
		{"Abonelik Durumu Dağılımı", summary.BySubscription},
	}
	for _, section := range distributions {
		rows := [][]string{{section.title, "Adet", "Yüzde (%)"}}
		for _, bucket := range section.buckets {
			rows = append(rows, []string{
				bucket.Label,
				strconv.Itoa(bucket.Count),
				formatRate(bucket.Percentage),
			})
		}
		rows = append(rows, []string{})
		if err := writeAll(rows); err != nil {
			return err
		}
	}

	personnelRows := [][]string{{"Sıra", "Personel", "Toplam", "Başarılı", "Dönüşüm Oranı (%)"}}
	for _, performer := range summary.Personnel {
		personnelRows = append(personnelRows, []string{
			strconv.Itoa(performer.Rank),
			performer.Name,
			strconv.Itoa(performer.Total),
			strconv.Itoa(performer.SuccessCount),
			formatRate(performer.ConversionRate),
		})
	}
	personnelRows = append(personnelRows, []string{})
	if err := writeAll(personnelRows); err != nil {
		return err
	}

	teamRows := [][]string{{"Takım Lideri", "Toplam", "Başarılı", "Ortalama Dönüşüm (%)"}}
	for _, team := range summary.Teams {
		teamRows = append(teamRows, []string{
			team.LeaderName,
			strconv.Itoa(team.Total),
			strconv.Itoa(team.SuccessCount),
			formatRate(team.AvgConversionRate),
		})
	}
	if err := writeAll(teamRows); err != nil {
		return err
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", common.ErrExportFailed)
	}
	return nil
}

func formatRate(rate float64) string {
	return strconv.FormatFloat(rate, 'f', 1, 64)
}
