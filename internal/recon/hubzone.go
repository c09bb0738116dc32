package recon

// hubZoneTable is the static location taxonomy. Built once as a composite
// literal and passed by reference into the join; never mutated. Locations
// absent from this table join with an empty hub/zone.
var hubZoneTable = map[string]HubZone{
	"DOMGRD": {"South", "Bangalore Zone"},
	"ELEGRD": {"South", "Bangalore Zone"},
	"HOOGRD": {"South", "Bangalore Zone"},
	"HUBGRD": {"South", "South COC"},
	"MNGGRD": {"South", "South COC"},
	"MYOGRD": {"South", "South COC"},
	"SARGRD": {"South", "Bangalore Zone"},
	"YELGRD": {"South", "Bangalore Zone"},
	"YESGRD": {"South", "Bangalore Zone"},
	"ADYGRD": {"South", "Chennai Zone"},
	"ANNGRD": {"South", "Chennai Zone"},
	"CBTGRD": {"South", "South COC"},
	"CHNGRD": {"South", "Chennai Zone"},
	"COCGRD": {"South", "South COC"},
	"COMGRD": {"South", "South COC"},
	"GUIGRD": {"South", "Chennai Zone"},
	"HSRGRD": {"South", "South COC"},
	"MMNGRD": {"South", "Chennai Zone"},
	"PONGRD": {"South", "South COC"},
	"SRIGRD": {"South", "Chennai Zone"},
	"HO":     {"Head Office", "Head Office"},
	"ANPGRD": {"South", "Hyderabad Zone"},
	"HYDGRD": {"South", "Hyderabad Zone"},
	"HYRGRD": {"South", "Hyderabad Zone"},
	"HYTGRD": {"South", "Hyderabad Zone"},
	"JBHGRD": {"South", "Hyderabad Zone"},
	"VIGGRD": {"South", "South COC"},
	"VJWGRD": {"South", "South COC"},
	"ALIGRD": {"Kolkata", "Kolkata Zone"},
	"ASLGRD": {"Kolkata", "East COC"},
	"BARGRD": {"Kolkata", "Odisha Zone"},
	"BBLGRD": {"Kolkata", "Odisha Zone"},
	"BBRGRD": {"Kolkata", "Odisha Zone"},
	"BHRGRD": {"Kolkata", "East COC"},
	"GHTGRD": {"Kolkata", "East COC"},
	"JAJGRD": {"Kolkata", "Odisha Zone"},
	"JAMGRD": {"Kolkata", "East COC"},
	"JASGRD": {"Kolkata", "East COC"},
	"JHAGRD": {"Kolkata", "Odisha Zone"},
	"PATGRD": {"Kolkata", "East COC"},
	"PTNGRD": {"Kolkata", "East COC"},
	"RAIGRD": {"Kolkata", "East COC"},
	"RJHGRD": {"Kolkata", "Kolkata Zone"},
	"ROUGRD": {"Kolkata", "Odisha Zone"},
	"SALGRD": {"Kolkata", "Kolkata Zone"},
	"SILGRD": {"Kolkata", "East COC"},
	"USCGRD": {"Kolkata", "East COC"},
	"AHDGRD": {"Mumbai", "West COC"},
	"AHMGRD": {"Mumbai", "West COC"},
	"AINGRD": {"Mumbai", "West COC"},
	"ANKGRD": {"Mumbai", "West COC"},
	"BODGRD": {"Mumbai", "West COC"},
	"CORMSP": {"Mumbai", "Mumbai Zone"},
	"DEUGRD": {"Mumbai", "West COC"},
	"GONGRD": {"Mumbai", "West COC"},
	"JNAGRD": {"Mumbai", "West COC"},
	"MNMGRD": {"Mumbai", "Mumbai Zone"},
	"MNVGRD": {"Mumbai", "Mumbai Zone"},
	"MONGRD": {"Mumbai", "Mumbai Zone"},
	"MSOGRD": {"Mumbai", "Mumbai Zone"},
	"MUCGRD": {"Mumbai", "Mumbai Zone"},
	"MUSGRD": {"Mumbai", "West COC"},
	"MUSMSP": {"Mumbai", "Mumbai Zone"},
	"NAGGRD": {"Mumbai", "West COC"},
	"PNEGRD": {"Mumbai", "Pune Zone"},
	"PNRGRD": {"Mumbai", "Pune Zone"},
	"PUNGRD": {"Mumbai", "Pune Zone"},
	"PUWGRD": {"Mumbai", "Pune Zone"},
	"BHLGRD": {"NCR", "North COC"},
	"CHDGRD": {"NCR", "North COC"},
	"CP1GRD": {"NCR", "Delhi Zone"},
	"DDNGRD": {"NCR", "North COC"},
	"DUNGRD": {"NCR", "North COC"},
	"EMBGRD": {"NCR", "Delhi Zone"},
	"FBDGRD": {"NCR", "Gurgaon Zone"},
	"FRMGRD": {"NCR", "Delhi Zone"},
	"GGNGRD": {"NCR", "Gurgaon Zone"},
	"GHAGRD": {"NCR", "Noida Zone"},
	"GNBGRD": {"NCR", "Gurgaon Zone"},
	"GNSGRD": {"NCR", "Gurgaon Zone"},
	"IDRGRD": {"NCR", "North COC"},
	"JALGRD": {"NCR", "North COC"},
	"JARGRD": {"NCR", "North COC"},
	"JAUGRD": {"NCR", "North COC"},
	"JMUGRD": {"NCR", "North COC"},
	"JNKGRD": {"NCR", "North COC"},
	"JPRGRD": {"NCR", "North COC"},
	"LKWGRD": {"NCR", "North COC"},
	"LUDGRD": {"NCR", "North COC"},
	"MNSGRD": {"NCR", "Gurgaon Zone"},
	"MRTGRD": {"NCR", "North COC"},
	"NDAGRD": {"NCR", "Noida Zone"},
	"NDGGRD": {"NCR", "Noida Zone"},
	"PSPGRD": {"NCR", "Delhi Zone"},
	"PWNGRD": {"NCR", "North COC"},
	"RPRGRD": {"NCR", "North COC"},
	"SPTGRD": {"NCR", "North COC"},
	"UDRGRD": {"NCR", "North COC"},
	"USEGRD": {"NCR", "North COC"},
	"UTKGRD": {"NCR", "North COC"},
}

// HubZones exposes the taxonomy for callers that need to pass it explicitly
// (tests swap in smaller tables).
func HubZones() map[string]HubZone {
	return hubZoneTable
}
