package internal

const (
	ColumnName            = "Name"
	ColumnCASNumber       = "CASNumber"
	ColumnAmount          = "Amount"
	ColumnUnit            = "Unit"
	ColumnBarcode         = "Barcode"
	ColumnContainerType   = "Type of container"
	ColumnMolID           = "MolID"
	ColumnSupplier        = "Supplier"
	ColumnStorageName     = "Storage name"
	ColumnCompartmentName = "Compartment name"
	ColumnTimestamp       = "Timestamp"
	ColumnCAS             = "CAS"
	ColumnMass            = "Mass"

	MassMissing = "Missing"
)

// InventoryRequiredColumns must be present in every inventory table.
var InventoryRequiredColumns = []string{
	ColumnName, ColumnCASNumber, ColumnAmount, ColumnUnit,
	ColumnBarcode, ColumnStorageName, ColumnCompartmentName,
}

// ExportHeaders is the exact header row of the output workbook.
var ExportHeaders = []string{
	ColumnName, ColumnCAS, ColumnMass, ColumnStorageName, ColumnCompartmentName, ColumnBarcode,
}

type RawInventoryRecord struct {
	Name            string `csv:"Name"`
	CASNumber       string `csv:"CASNumber"`
	Amount          string `csv:"Amount"`
	Unit            string `csv:"Unit"`
	Barcode         string `csv:"Barcode"`
	ContainerType   string `csv:"Type of container"`
	MolID           string `csv:"MolID"`
	Supplier        string `csv:"Supplier"`
	StorageName     string `csv:"Storage name"`
	CompartmentName string `csv:"Compartment name"`
}

// InventoryRecord is a cleaned inventory row. Barcode is never empty.
type InventoryRecord struct {
	Name            *string
	CASNumber       *string
	Mass            string
	StorageName     *string
	CompartmentName *string
	Barcode         string
}

type RawBarcodeEntry struct {
	Timestamp string `csv:"Timestamp"`
	Barcode   string `csv:"Barcode"`
}

type BarcodeEntry struct {
	Timestamp *string
	Barcode   *string
}

// MatchedRecord is one output row. Inventory-derived fields are nil when
// the barcode had no inventory match.
type MatchedRecord struct {
	Name            *string `json:"name"`
	CAS             *string `json:"cas"`
	Mass            *string `json:"mass"`
	StorageName     *string `json:"storageName"`
	CompartmentName *string `json:"compartmentName"`
	Barcode         *string `json:"barcode"`
}

type RunSummary struct {
	RunID          string
	BarcodeFile    string
	InventoryFile  string
	OutputPath     string
	BarcodeEntries int
	InventoryRows  int
	InventoryKept  int
	Matched        int
	Unmatched      int
	OutputRows     int
}

type RunRow struct {
	ID             string
	BarcodeFile    string
	InventoryFile  string
	OutputPath     string
	BarcodeEntries int
	OutputRows     int
	Matched        int
	Unmatched      int
	CreatedAt      string
}
