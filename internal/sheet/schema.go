package sheet

// Schema binds a worksheet name to its header contract. Column order is
// significant: the codec writes positionally, not by name.
type Schema struct {
	Sheet  string
	Header []string
}

// Col returns the 1-indexed column of a header name, or 0 when the header does
// not carry it.
func (s Schema) Col(name string) int {
	for i, h := range s.Header {
		if h == name {
			return i + 1
		}
	}
	return 0
}

// ColIn is Col against a sheet's actual header row instead of the canonical
// one, for sheets whose columns were appended over time.
func ColIn(header []string, name string) int {
	for i, h := range header {
		if h == name {
			return i + 1
		}
	}
	return 0
}

// The six sheet contracts. Header vocabulary is fixed; renaming a column here
// breaks every document already in the store.
var (
	DamageReports = Schema{
		Sheet:  "Laporan_Kerusakan",
		Header: []string{"Tanggal", "Nama Pelapor", "Lokasi", "Kendala", "Bukti Foto", "Tiket ID", "Status"},
	}

	Repairs = Schema{
		Sheet:  "Laporan_Perbaikan",
		Header: []string{"Tanggal", "Nama Teknisi", "Lokasi", "Tindakan Perbaikan", "Bukti Foto", "Tiket ID"},
	}

	Cleaning = Schema{
		Sheet:  "Checklist_Kebersihan",
		Header: []string{"Tanggal", "Nama Petugas", "Area", "Kondisi", "Bukti Foto"},
	}

	Inventory = Schema{
		Sheet:  "Inventaris_Barang",
		Header: []string{"Nama Barang", "Kategori", "Stok", "Satuan", "Min Stok", "Terakhir Update"},
	}

	Attendance = Schema{
		Sheet:  "Presensi_PPNPN",
		Header: []string{"Waktu", "Nama Pegawai", "Status", "Keterangan", "Bukti Foto"},
	}

	ContentPlans = Schema{
		Sheet:  "Rencana_Konten",
		Header: []string{"Tanggal", "Caption", "Platform", "Status"},
	}
)

// Schemas lists every contract, in the order administrative setup creates them.
var Schemas = []Schema{DamageReports, Repairs, Cleaning, Inventory, Attendance, ContentPlans}
