package lookup

// schoolTable lists member schools in lookup order. Order matters for
// SchoolIDByTeamName, which returns the first containing match.
var schoolTable = []School{
	{ID: 65, Name: "Appleby College (b)", Abbreviation: "AC (b)", LogoDir: "assets/AC Logo.png"},
	{ID: 66, Name: "Appleby College", Abbreviation: "AC", LogoDir: "assets/AC Logo.png"},
	{ID: 67, Name: "Upper Canada College", Abbreviation: "UCC", LogoDir: "assets/UCC Logo.png"},
	{ID: 68, Name: "St. Andrew's College", Abbreviation: "SAC", LogoDir: "assets/SAC Logo.png"},
	{ID: 69, Name: "St. Michael's College", Abbreviation: "SMC", LogoDir: "assets/SMC Logo.png"},
	{ID: 70, Name: "Crescent School", Abbreviation: "CS", LogoDir: "assets/CS Logo.png"},
	{ID: 71, Name: "Royal St. George's College", Abbreviation: "RSGC", LogoDir: "assets/RSGC Logo.png"},
	{ID: 72, Name: "Trinity College School", Abbreviation: "TCS", LogoDir: "assets/TCS Logo.png"},
	{ID: 73, Name: "Crestwood Preparatory College", Abbreviation: "CPC", LogoDir: "assets/CPC Logo.png"},
	{ID: 74, Name: "Hillfield Strathallan College", Abbreviation: "HSC", LogoDir: "assets/HSC Logo.png"},
	{ID: 75, Name: "St. John's Kilmarnock", Abbreviation: "SJK", LogoDir: "assets/SJK Logo.png"},
	{ID: 76, Name: "Lakefield College School", Abbreviation: "LCS", LogoDir: "assets/LCS Logo.png"},
	{ID: 77, Name: "Pickering College", Abbreviation: "PC", LogoDir: "assets/PC Logo.png"},
	{ID: 78, Name: "Ridley College", Abbreviation: "RC", LogoDir: "assets/RC Logo.png"},
	{ID: 79, Name: "De La Salle", Abbreviation: "DLS", LogoDir: "assets/DLS Logo.png"},
	{ID: 80, Name: "Villanova College", Abbreviation: "VC", LogoDir: "assets/VC Logo.png"},
	{ID: 81, Name: "Holy Trinity School", Abbreviation: "HTS", LogoDir: "assets/HTS Logo.png"},
	{ID: 82, Name: "The York School", Abbreviation: "YS", LogoDir: "assets/YS Logo.png"},
	{ID: 83, Name: "Sterling Hall School", Abbreviation: "SHS", LogoDir: "assets/SHS Logo.png"},
	{ID: 84, Name: "Trafalgar Castle School", Abbreviation: "TRAF", LogoDir: "assets/TRAF Logo.png"},
	{ID: 85, Name: "Country Day School", Abbreviation: "CDS", LogoDir: "assets/CDS Logo.png"},
	{ID: 86, Name: "Bishop Strachan School", Abbreviation: "BSS", LogoDir: "assets/BSS Logo.png"},
	{ID: 87, Name: "Havergal College", Abbreviation: "HC", LogoDir: "assets/HC Logo.png"},
	{ID: 88, Name: "Hawthorn School", Abbreviation: "HS", LogoDir: "assets/HS Logo.png"},
	{ID: 89, Name: "Branksome Hall", Abbreviation: "BH", LogoDir: "assets/BH Logo.png"},
	{ID: 90, Name: "St. Mildred's Lightbourn School", Abbreviation: "SMLS", LogoDir: "assets/SMLS Logo.png"},
	{ID: 91, Name: "Albert College", Abbreviation: "ALB", LogoDir: "assets/ALB Logo.png"},
	{ID: 92, Name: "Bayview Glen", Abbreviation: "BVG", LogoDir: "assets/BG Logo.png"},
	{ID: 93, Name: "Greenwod School", Abbreviation: "GS", LogoDir: "assets/GS Logo.png"},
	{ID: 94, Name: "Rosedale Day School", Abbreviation: "RDS", LogoDir: "assets/RDS Logo.png"},
	{ID: 95, Name: "Toronto Montessori School", Abbreviation: "TMS", LogoDir: "assets/TMS Logo.png"},
	{ID: 96, Name: "Toronto French School", Abbreviation: "TFS", LogoDir: "assets/TFS Logo.png"},
	{ID: 97, Name: "Nichols School", Abbreviation: "NS", LogoDir: "assets/NS Logo.png"},
	{ID: 98, Name: "Upper Canada College Prep", Abbreviation: "UCCP", LogoDir: "assets/UCC Logo.png"},
	{ID: 99, Name: "St. Anne's School", Abbreviation: "SAS", LogoDir: "assets/SAS Logo.png"},
	{ID: 100, Name: "Holy Name of Mary CS", Abbreviation: "HNMCS", LogoDir: "assets/HNMCS Logo.png"},
	{ID: 102, Name: "Sterling Hall School (b)", Abbreviation: "SHS (b)", LogoDir: "assets/SHS Logo.png"},
	{ID: 103, Name: "Greenwood College School", Abbreviation: "GCS", LogoDir: "assets/GCS Logo.png"},
	{ID: 104, Name: "The York School", Abbreviation: "TYS", LogoDir: "assets/GCS Logo.png"},
	{ID: 105, Name: "Branksome RSGC", Abbreviation: "BHRSG", LogoDir: "assets/BH Logo.png"},
	{ID: 106, Name: "Havergal Crescent", Abbreviation: "HACS", LogoDir: "assets/HC Logo.png"},
	{ID: 107, Name: "Bishop Strachan St.Mike's", Abbreviation: "BSSMC", LogoDir: "assets/BSS Logo.png"},
	{ID: 108, Name: "St. Clement's UCC", Abbreviation: "SCSUCC", LogoDir: "assets/UCC Logo.png"},
	{ID: 109, Name: "St. Clement's School", Abbreviation: "SCS", LogoDir: "assets/SCS Logo.png"},
	{ID: 110, Name: "Lauremont School", Abbreviation: "LS", LogoDir: "assets/LS Logo.png"},
	{ID: 111, Name: "Kingsway College School", Abbreviation: "KCS", LogoDir: "assets/KCS Logo.png"},
	{ID: 112, Name: "St. Andrew's College (White)", Abbreviation: "SAC\ufffd(White", LogoDir: "assets/SAC Logo.png"},
	{ID: 114, Name: "St. Andrew's College (Red)", Abbreviation: "SAC\ufffd(Red", LogoDir: "assets/SAC Logo.png"},
	{ID: 115, Name: "Upper Canada College (White)", Abbreviation: "UCC\ufffd(White", LogoDir: "assets/UCC Logo.png"},
	{ID: 119, Name: "Upper Canada College (Blue)", Abbreviation: "UCC\ufffd(Blue", LogoDir: "assets/UCC Logo.png"},
	{ID: 120, Name: "Montcrest School", Abbreviation: "MS", LogoDir: "assets/MC Logo.png"},
}
