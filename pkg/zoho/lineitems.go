package zoho

// LineItem is one product line on a quote, order or invoice.
type LineItem struct {
	ID          string  `json:"id,omitempty"`
	ProductID   string  `json:"productId"`
	ProductName string  `json:"productName,omitempty"`
	Quantity    float64 `json:"quantity"`
	ListPrice   float64 `json:"listPrice,omitempty"`
	UnitPrice   float64 `json:"unitPrice,omitempty"`
	Total       float64 `json:"total,omitempty"`
	Discount    float64 `json:"discount,omitempty"`
	NetTotal    float64 `json:"netTotal,omitempty"`
	Tax         float64 `json:"tax,omitempty"`
}

type LineItemInput struct {
	ProductID string   `json:"productId"`
	Quantity  float64  `json:"quantity"`
	ListPrice *float64 `json:"listPrice,omitempty"`
	UnitPrice *float64 `json:"unitPrice,omitempty"`
	Discount  *float64 `json:"discount,omitempty"`
}

// mapLineItems reads a subform. Quote lines carry their own id, net total
// and tax; order and invoice lines do not.
func mapLineItems(r Record, key string, detailed bool) []LineItem {
	rows := r.Records(key)
	if rows == nil {
		return nil
	}
	items := make([]LineItem, 0, len(rows))
	for _, row := range rows {
		productID, productName := row.Ref("Product_Name")
		item := LineItem{
			ProductID:   productID,
			ProductName: productName,
			Quantity:    row.Number("Quantity"),
			ListPrice:   row.Number("List_Price"),
			UnitPrice:   row.Number("Unit_Price"),
			Total:       row.Number("Total"),
			Discount:    row.Number("Discount"),
		}
		if detailed {
			item.ID = row.ID()
			item.NetTotal = row.Number("Net_Total")
			item.Tax = row.Number("Tax")
		}
		items = append(items, item)
	}
	return items
}

// lineItemsPayload returns nil when items is nil so the subform is left
// out of the request.
func lineItemsPayload(items []LineItemInput) interface{} {
	if items == nil {
		return nil
	}
	rows := make([]map[string]interface{}, 0, len(items))
	for _, item := range items {
		row := map[string]interface{}{
			"Product_Name": map[string]interface{}{"id": item.ProductID},
			"Quantity":     item.Quantity,
		}
		if item.ListPrice != nil {
			row["List_Price"] = *item.ListPrice
		}
		if item.UnitPrice != nil {
			row["Unit_Price"] = *item.UnitPrice
		}
		if item.Discount != nil {
			row["Discount"] = *item.Discount
		}
		rows = append(rows, row)
	}
	return rows
}

// Totals are the computed amounts shared by quotes, orders and invoices.
type Totals struct {
	SubTotal   float64 `json:"subTotal,omitempty"`
	Discount   float64 `json:"discount,omitempty"`
	Tax        float64 `json:"tax,omitempty"`
	Adjustment float64 `json:"adjustment,omitempty"`
	GrandTotal float64 `json:"grandTotal,omitempty"`
}

func mapTotals(r Record) Totals {
	return Totals{
		SubTotal:   r.Number("Sub_Total"),
		Discount:   r.Number("Discount"),
		Tax:        r.Number("Tax"),
		Adjustment: r.Number("Adjustment"),
		GrandTotal: r.Number("Grand_Total"),
	}
}
