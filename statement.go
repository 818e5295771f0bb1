package bankcore

import (
	"io"

	"github.com/go-pdf/fpdf"
)

// writeStatement renders the account header and its most recent
// transactions, newest first, as a single-page PDF.
func writeStatement(w io.Writer, acct *Account, txns []Transaction) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(0, 10, "Account Statement")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 6, "Account: "+acct.AccountNumber)
	pdf.Ln(6)
	pdf.Cell(0, 6, "Type: "+acct.AccountType)
	pdf.Ln(6)
	pdf.Cell(0, 6, "Balance: "+acct.Balance.StringFixed(2))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(40, 7, "Date", "1", 0, "L", false, 0, "")
	pdf.CellFormat(50, 7, "Reference", "1", 0, "L", false, 0, "")
	pdf.CellFormat(25, 7, "Amount", "1", 0, "R", false, 0, "")
	pdf.CellFormat(25, 7, "Balance", "1", 0, "R", false, 0, "")
	pdf.CellFormat(25, 7, "Status", "1", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	for _, txn := range txns {
		pdf.CellFormat(40, 6, txn.Timestamp.Format("2006-01-02 15:04"), "1", 0, "L", false, 0, "")
		pdf.CellFormat(50, 6, txn.Ref, "1", 0, "L", false, 0, "")
		pdf.CellFormat(25, 6, txn.Amount.StringFixed(2), "1", 0, "R", false, 0, "")
		pdf.CellFormat(25, 6, txn.PostTxBalance.StringFixed(2), "1", 0, "R", false, 0, "")
		pdf.CellFormat(25, 6, string(txn.Status), "1", 1, "L", false, 0, "")
	}

	return pdf.Output(w)
}
