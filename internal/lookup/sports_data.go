package lookup

// sportTable is the league catalogue of the CISAA results site.
var sportTable = []SportInfo{
	{Name: "Flag Football Sr Boys DI", Term: Fall, LeagueCode: "6TU0L9CN4", UsesGamesheet: false},
	{Name: "Flag Football U14 Boys", Term: Fall, LeagueCode: "69J1F14P0", UsesGamesheet: false},
	{Name: "Football Sr Boys", Term: Fall, LeagueCode: "2860Y8MWX", UsesGamesheet: false},
	{Name: "Soccer Sr Boys DI", Term: Fall, LeagueCode: "2860Y8N5D", UsesGamesheet: true},
	{Name: "Soccer Sr Boys DIB", Term: Fall, LeagueCode: "6TU16OCAM", UsesGamesheet: true},
	{Name: "Soccer Sr Boys DII", Term: Fall, LeagueCode: "2860Y8SQZ", UsesGamesheet: true},
	{Name: "Soccer Sr Boys DIII", Term: Fall, LeagueCode: "2860Y8NIZ", UsesGamesheet: true},
	{Name: "Soccer Jr Boys DI", Term: Fall, LeagueCode: "2860Y8N9V", UsesGamesheet: true},
	{Name: "Soccer Jr Boys DIB", Term: Fall, LeagueCode: "5GK0HUT9S", UsesGamesheet: true},
	{Name: "Soccer Jr Boys DII", Term: Fall, LeagueCode: "2860Y8UL1", UsesGamesheet: true},
	{Name: "Soccer Jr Boys DIII", Term: Fall, LeagueCode: "2860Y8QSJ", UsesGamesheet: true},
	{Name: "Soccer U14 Boys DI", Term: Fall, LeagueCode: "2860Y8N7H", UsesGamesheet: false},
	{Name: "Soccer U14 Boys DII", Term: Fall, LeagueCode: "2860Y8Q3F", UsesGamesheet: false},
	{Name: "Soccer U14 Boys DIIB", Term: Fall, LeagueCode: "6W61BEE6T", UsesGamesheet: false},
	{Name: "Soccer U13 Boys DI", Term: Fall, LeagueCode: "2860Y8N6T", UsesGamesheet: false},
	{Name: "Soccer U13 Boys DII", Term: Fall, LeagueCode: "2860Y8N57", UsesGamesheet: false},
	{Name: "Soccer U12 Boys", Term: Fall, LeagueCode: "2AC0DY8K3", UsesGamesheet: false},
	{Name: "Soccer U11 Boys", Term: Fall, LeagueCode: "2A70G6P3Q", UsesGamesheet: false},
	{Name: "Soccer U10 Boys", Term: Fall, LeagueCode: "2A70G8ET3", UsesGamesheet: false},
	{Name: "Volleyball Sr Boys DI", Term: Fall, LeagueCode: "2860Y8NAP", UsesGamesheet: false},
	{Name: "Volleyball Sr Boys DII", Term: Fall, LeagueCode: "2860Y8OX1", UsesGamesheet: false},
	{Name: "Volleyball Sr Boys DIII", Term: Fall, LeagueCode: "31312JJRO", UsesGamesheet: false},
	{Name: "Volleyball Jr Boys DI", Term: Fall, LeagueCode: "2860Y8OON", UsesGamesheet: false},
	{Name: "Volleyball Jr Boys DII", Term: Fall, LeagueCode: "2WO1A9SHY", UsesGamesheet: false},
	{Name: "Volleyball U14 Boys DI", Term: Fall, LeagueCode: "2860Y8N8R", UsesGamesheet: false},
	{Name: "Volleyball U14 Boys DII", Term: Fall, LeagueCode: "2B519NKRQ", UsesGamesheet: false},
	{Name: "Volleyball U14 Boys DIII", Term: Fall, LeagueCode: "69X0TA88U", UsesGamesheet: false},
	{Name: "Volleyball U12 Boys", Term: Fall, LeagueCode: "3HS0FGO1E", UsesGamesheet: false},
	{Name: "Basketball Sr Girls DI", Term: Fall, LeagueCode: "2860Y8ND5", UsesGamesheet: false},
	{Name: "Basketball Sr Girls DIB", Term: Fall, LeagueCode: "5550ML66K", UsesGamesheet: false},
	{Name: "Basketball Sr Girls DII", Term: Fall, LeagueCode: "2860Y8SQ1", UsesGamesheet: false},
	{Name: "Basketball Sr Girls DIII", Term: Fall, LeagueCode: "2860Y8NC7", UsesGamesheet: false},
	{Name: "Basketball Jr Girls DI", Term: Fall, LeagueCode: "2860Y8NFT", UsesGamesheet: false},
	{Name: "Basketball Jr Girls DII", Term: Fall, LeagueCode: "2860Y8RL9", UsesGamesheet: false},
	{Name: "Basketball Jr Girls DIIB", Term: Fall, LeagueCode: "6W51D3JTI", UsesGamesheet: false},
	{Name: "Basketball U14 Girls DI", Term: Fall, LeagueCode: "2860Y8NEH", UsesGamesheet: false},
	{Name: "Basketball U14 Girls DIB", Term: Fall, LeagueCode: "6W51BX5L7", UsesGamesheet: false},
	{Name: "Basketball U14 Girls DII", Term: Fall, LeagueCode: "2B51AIN8X", UsesGamesheet: false},
	{Name: "Basketball U14 Girls DIII", Term: Fall, LeagueCode: "2860Y8NGV", UsesGamesheet: false},
	{Name: "Basketball U13 Girls DI", Term: Fall, LeagueCode: "2860Y8NHP", UsesGamesheet: false},
	{Name: "Basketball U13 Girls DII", Term: Fall, LeagueCode: "6JJ1946S7", UsesGamesheet: false},
	{Name: "Basketball U12 Girls", Term: Fall, LeagueCode: "2860Y8SZ9", UsesGamesheet: false},
	{Name: "Basketball U11 Girls", Term: Fall, LeagueCode: "2WO1A3OKF", UsesGamesheet: false},
	{Name: "Basketball U10 Girls", Term: Fall, LeagueCode: "4D90EZHCI", UsesGamesheet: false},
	{Name: "Field Hockey Sr Girls DI", Term: Fall, LeagueCode: "2860Y8N2D", UsesGamesheet: false},
	{Name: "Field Hockey Sr Girls DIB", Term: Fall, LeagueCode: "56C0NDMME", UsesGamesheet: false},
	{Name: "Field Hockey Sr Girls DII", Term: Fall, LeagueCode: "2860Y8ULR", UsesGamesheet: false},
	{Name: "Field Hockey Sr Girls DIII", Term: Fall, LeagueCode: "2860Y8N0X", UsesGamesheet: false},
	{Name: "Field Hockey Jr Girls", Term: Fall, LeagueCode: "2860Y8QH1", UsesGamesheet: false},
	{Name: "Field Hockey U14 Girls", Term: Fall, LeagueCode: "2860Y8N3J", UsesGamesheet: false},
	{Name: "Flag Football Sr Girls DI", Term: Fall, LeagueCode: "67G0YK5EQ", UsesGamesheet: false},
	{Name: "Flag Football Sr Girls DII", Term: Fall, LeagueCode: "6W70MH4MT", UsesGamesheet: false},
	{Name: "Flag Football Jr Girls DI", Term: Fall, LeagueCode: "6W70N72DI", UsesGamesheet: false},
	{Name: "Flag Football U14 Girls", Term: Fall, LeagueCode: "67G0YQS36", UsesGamesheet: false},
	{Name: "Soccer Sr Girls Fall DI", Term: Fall, LeagueCode: "2860Y8MYT", UsesGamesheet: true},
	{Name: "Soccer Sr Girls Fall DII", Term: Fall, LeagueCode: "2860Y8UMH", UsesGamesheet: true},
	{Name: "Soccer Jr Girls Fall", Term: Fall, LeagueCode: "6JH1BRXA6", UsesGamesheet: true},
	{Name: "Soccer U14 Girls Fall DI", Term: Fall, LeagueCode: "54Q1C6WLI", UsesGamesheet: false},
	{Name: "Soccer U14 Girls Fall DIB", Term: Fall, LeagueCode: "6LZ0E9324", UsesGamesheet: false},
	{Name: "Soccer U12 Girls Fall", Term: Fall, LeagueCode: "2860Y8T03", UsesGamesheet: false},
	{Name: "Soccer U10 Girls Fall", Term: Fall, LeagueCode: "4SV0P6FX5", UsesGamesheet: false},
	{Name: "Swimming Fall", Term: Fall, LeagueCode: "2AD0JA1GX", UsesGamesheet: false},
	{Name: "Cross Country HS", Term: Fall, LeagueCode: "2AD0GX5Z3", UsesGamesheet: false},
	{Name: "Cross Country Elementary", Term: Fall, LeagueCode: "2AD0H3ETP", UsesGamesheet: false},
	{Name: "Basketball Sr Boys DI", Term: Winter, LeagueCode: "2860Y8OYB", UsesGamesheet: false},
	{Name: "Basketball Sr Boys DIB", Term: Winter, LeagueCode: "3Z91AJ4A3", UsesGamesheet: false},
	{Name: "Basketball Sr Boys DII", Term: Winter, LeagueCode: "2860Y8REJ", UsesGamesheet: false},
	{Name: "Basketball Sr Boys DIII", Term: Winter, LeagueCode: "2860Y8MU3", UsesGamesheet: false},
	{Name: "Basketball Jr Boys DI", Term: Winter, LeagueCode: "2860Y8NKF", UsesGamesheet: false},
	{Name: "Basketball Jr Boys DIB", Term: Winter, LeagueCode: "5GK0JNPYQ", UsesGamesheet: false},
	{Name: "Basketball Jr Boys DII", Term: Winter, LeagueCode: "2860Y8UIL", UsesGamesheet: false},
	{Name: "Basketball Jr Boys DIII", Term: Winter, LeagueCode: "2860Y8NLH", UsesGamesheet: false},
	{Name: "Basketball U14 Boys DI", Term: Winter, LeagueCode: "2860Y8NPD", UsesGamesheet: false},
	{Name: "Basketball U14 Boys DIB", Term: Winter, LeagueCode: "5FI12S6NY", UsesGamesheet: false},
	{Name: "Basketball U14 Boys DII", Term: Winter, LeagueCode: "2860Y8UK7", UsesGamesheet: false},
	{Name: "Basketball U14 Boys DIII", Term: Winter, LeagueCode: "2860Y8NRF", UsesGamesheet: false},
	{Name: "Basketball U13 Boys DI", Term: Winter, LeagueCode: "2860Y8NMB", UsesGamesheet: false},
	{Name: "Basketball U13 Boys DIB", Term: Winter, LeagueCode: "6W60H5EED", UsesGamesheet: false},
	{Name: "Basketball U13 Boys DII", Term: Winter, LeagueCode: "2860Y8NML", UsesGamesheet: false},
	{Name: "Basketball U12 Boys", Term: Winter, LeagueCode: "28O0IJYEP", UsesGamesheet: false},
	{Name: "Basketball U11 Boys", Term: Winter, LeagueCode: "2A70G9TQF", UsesGamesheet: false},
	{Name: "Basketball U10 Boys", Term: Winter, LeagueCode: "2A70GEIW9", UsesGamesheet: false},
	{Name: "Hockey Sr Boys DI", Term: Winter, LeagueCode: "2860Y8NS5", UsesGamesheet: true},
	{Name: "Hockey Sr Boys NC DI", Term: Winter, LeagueCode: "37M0IXAEZ", UsesGamesheet: true},
	{Name: "Hockey Sr Boys NC DIB", Term: Winter, LeagueCode: "4WQ1A8HQI", UsesGamesheet: true},
	{Name: "Hockey Sr Boys NC DII", Term: Winter, LeagueCode: "2860Y8STB", UsesGamesheet: true},
	{Name: "Hockey Jr Boys DI", Term: Winter, LeagueCode: "67A134XG6", UsesGamesheet: true},
	{Name: "Hockey U14 Boys DI", Term: Winter, LeagueCode: "2860Y8NNP", UsesGamesheet: false},
	{Name: "Hockey U14 Boys DII", Term: Winter, LeagueCode: "2860Y8Q45", UsesGamesheet: false},
	{Name: "Hockey U12 Boys", Term: Winter, LeagueCode: "2A70INJS2", UsesGamesheet: false},
	{Name: "Squash Sr Boys", Term: Winter, LeagueCode: "2860Y8P31", UsesGamesheet: false},
	{Name: "Squash Jr Boys", Term: Winter, LeagueCode: "2860Y8P3R", UsesGamesheet: false},
	{Name: "Squash U14 Boys", Term: Winter, LeagueCode: "2860Y8PSV", UsesGamesheet: false},
	{Name: "Badminton Sr Girls", Term: Winter, LeagueCode: "2860Y8P4P", UsesGamesheet: false},
	{Name: "Badminton Jr Girls", Term: Winter, LeagueCode: "2860Y8P5F", UsesGamesheet: false},
	{Name: "Badminton U14 Girls", Term: Winter, LeagueCode: "2860Y8P61", UsesGamesheet: false},
	{Name: "Badminton U13 Girls", Term: Winter, LeagueCode: "2860Y8MWF", UsesGamesheet: false},
	{Name: "Hockey Sr Girls DI", Term: Winter, LeagueCode: "2860Y8NMV", UsesGamesheet: true},
	{Name: "Hockey Sr Girls DIB", Term: Winter, LeagueCode: "2860Y8NQX", UsesGamesheet: true},
	{Name: "Hockey Sr Girls DII", Term: Winter, LeagueCode: "2860Y8UJH", UsesGamesheet: true},
	{Name: "Squash Sr Girls", Term: Winter, LeagueCode: "5460GTE91", UsesGamesheet: false},
	{Name: "Volleyball Sr Girls DI", Term: Winter, LeagueCode: "2860Y8NVH", UsesGamesheet: false},
	{Name: "Volleyball Sr Girls DIB", Term: Winter, LeagueCode: "4S70A7NK3", UsesGamesheet: false},
	{Name: "Volleyball Sr Girls DII", Term: Winter, LeagueCode: "2BO1AXBXR", UsesGamesheet: false},
	{Name: "Volleyball Sr Girls DIII", Term: Winter, LeagueCode: "2860Y8NSR", UsesGamesheet: false},
	{Name: "Volleyball Jr Girls DI", Term: Winter, LeagueCode: "2860Y8NWF", UsesGamesheet: false},
	{Name: "Volleyball Jr Girls DII", Term: Winter, LeagueCode: "2BO1A0M4A", UsesGamesheet: false},
	{Name: "Volleyball Jr Girls DIII", Term: Winter, LeagueCode: "2860Y8PC5", UsesGamesheet: false},
	{Name: "Volleyball U14 Girls DI", Term: Winter, LeagueCode: "2860Y8P97", UsesGamesheet: false},
	{Name: "Volleyball U14 Girls DII", Term: Winter, LeagueCode: "2BO1C5CTB", UsesGamesheet: false},
	{Name: "Volleyball U14 Girls DIIB", Term: Winter, LeagueCode: "6W70QOZIF", UsesGamesheet: false},
	{Name: "Volleyball U14 Girls DIII", Term: Winter, LeagueCode: "2860Y8NT9", UsesGamesheet: false},
	{Name: "Volleyball U13 Girls DI", Term: Winter, LeagueCode: "2860Y8NXX", UsesGamesheet: false},
	{Name: "Volleyball U13 Girls DII", Term: Winter, LeagueCode: "47I0DJ4P6", UsesGamesheet: false},
	{Name: "Volleyball U12 Girls", Term: Winter, LeagueCode: "2860Y8T1X", UsesGamesheet: false},
	{Name: "Volleyball U11 Girls", Term: Winter, LeagueCode: "2WO1A1OUT", UsesGamesheet: false},
	{Name: "Volleyball U10 Girls", Term: Winter, LeagueCode: "4D90F23EC", UsesGamesheet: false},
	{Name: "Alpine Skiing", Term: Winter, LeagueCode: "2AD0JZI99", UsesGamesheet: false},
	{Name: "Alpine Skiing U14", Term: Winter, LeagueCode: "4JH0VI7TF", UsesGamesheet: false},
	{Name: "Curling Div I", Term: Winter, LeagueCode: "2AD0KCRKF", UsesGamesheet: false},
	{Name: "Curling Div II", Term: Winter, LeagueCode: "2IN0LB0PI", UsesGamesheet: false},
	{Name: "Curling U14 Coed", Term: Winter, LeagueCode: "4RW0RVLZG", UsesGamesheet: false},
	{Name: "Futsal U14 Coed", Term: Winter, LeagueCode: "6TU0LO9ZS", UsesGamesheet: false},
	{Name: "Nordic Ski", Term: Winter, LeagueCode: "2AD0KB2H7", UsesGamesheet: false},
	{Name: "Snowboarding", Term: Winter, LeagueCode: "2AF0JA088", UsesGamesheet: false},
	{Name: "Swimming HS Coed", Term: Winter, LeagueCode: "2AD0JI15P", UsesGamesheet: false},
	{Name: "Swimming ELE Coed", Term: Winter, LeagueCode: "2AD0JV1G7", UsesGamesheet: false},
	{Name: "Baseball Sr Boys DI", Term: Spring, LeagueCode: "2860Y8Q1V", UsesGamesheet: false},
	{Name: "Baseball Sr Boys DIB", Term: Spring, LeagueCode: "5FI11KHT3", UsesGamesheet: false},
	{Name: "Golf Sr Boys", Term: Spring, LeagueCode: "6JG19ROTT", UsesGamesheet: false},
	{Name: "Golf Jr Boys", Term: Spring, LeagueCode: "6JG18GGK7", UsesGamesheet: false},
	{Name: "Lacrosse Sr Boys", Term: Spring, LeagueCode: "2860Y8OBX", UsesGamesheet: false},
	{Name: "Lacrosse U14 Boys", Term: Spring, LeagueCode: "2860Y8Q4R", UsesGamesheet: false},
	{Name: "Rugby Sr Boys 15's", Term: Spring, LeagueCode: "2860Y8OA1", UsesGamesheet: false},
	{Name: "Rugby Sr Boys 7's", Term: Spring, LeagueCode: "41F1BW798", UsesGamesheet: false},
	{Name: "Rugby Jr Boys 15's", Term: Spring, LeagueCode: "2860Y8O2N", UsesGamesheet: false},
	{Name: "Rugby Jr Boys 7's", Term: Spring, LeagueCode: "3RB0NWL58", UsesGamesheet: false},
	{Name: "Rugby U14 Boys DI Touch", Term: Spring, LeagueCode: "2860Y8O07", UsesGamesheet: false},
	{Name: "Rugby U14 Boys DII Touch", Term: Spring, LeagueCode: "3PJ0FSNX6", UsesGamesheet: false},
	{Name: "Slow Pitch Sr Boys", Term: Spring, LeagueCode: "2860Y8OD1", UsesGamesheet: false},
	{Name: "Slow Pitch U14 Boys DI", Term: Spring, LeagueCode: "2860Y8SCT", UsesGamesheet: false},
	{Name: "Slow Pitch U14 Boys DII", Term: Spring, LeagueCode: "2860Y8O7J", UsesGamesheet: false},
	{Name: "Slow Pitch U12 Boys", Term: Spring, LeagueCode: "2A70GHFBT", UsesGamesheet: false},
	{Name: "Slow Pitch U11 Boys", Term: Spring, LeagueCode: "2L8199CL7", UsesGamesheet: false},
	{Name: "Tennis Sr Boys", Term: Spring, LeagueCode: "2860Y8PUL", UsesGamesheet: false},
	{Name: "Tennis Jr Boys", Term: Spring, LeagueCode: "2860Y8ODJ", UsesGamesheet: false},
	{Name: "Tennis U14 Boys", Term: Spring, LeagueCode: "2860Y8PTJ", UsesGamesheet: false},
	{Name: "Golf Sr Girls", Term: Spring, LeagueCode: "6JG18JH77", UsesGamesheet: false},
	{Name: "Rugby Sr Girls 7's DI", Term: Spring, LeagueCode: "37N0DVVAB", UsesGamesheet: false},
	{Name: "Rugby Sr Girls 7's DIB", Term: Spring, LeagueCode: "5CP0RKUV9", UsesGamesheet: false},
	{Name: "Rugby Sr Girls 7's DII", Term: Spring, LeagueCode: "6LK19FC1T", UsesGamesheet: false},
	{Name: "Rugby Jr Girls 7's", Term: Spring, LeagueCode: "5CP0RQYAV", UsesGamesheet: false},
	{Name: "Rugby U14 Girls Touch", Term: Spring, LeagueCode: "422148P60", UsesGamesheet: false},
	{Name: "Soccer Sr Girls Spring DI", Term: Spring, LeagueCode: "2860Y8O0H", UsesGamesheet: true},
	{Name: "Soccer Sr Girls Spring DII", Term: Spring, LeagueCode: "2860Y8Q2L", UsesGamesheet: true},
	{Name: "Soccer Jr Girls Spring", Term: Spring, LeagueCode: "2860Y8O3V", UsesGamesheet: true},
	{Name: "Soccer U14 Girls Spring DI", Term: Spring, LeagueCode: "2860Y8O57", UsesGamesheet: false},
	{Name: "Soccer U12 Girls Spring", Term: Spring, LeagueCode: "3FN0YCA5F", UsesGamesheet: false},
	{Name: "Softball Sr Girls DI", Term: Spring, LeagueCode: "2860Y8O83", UsesGamesheet: false},
	{Name: "Softball Sr Girls DII", Term: Spring, LeagueCode: "2860Y8OJF", UsesGamesheet: false},
	{Name: "Softball Jr Girls", Term: Spring, LeagueCode: "2860Y8O9B", UsesGamesheet: false},
	{Name: "Softball U14 Girls", Term: Spring, LeagueCode: "2860Y8OAP", UsesGamesheet: false},
	{Name: "Softball U13 Girls", Term: Spring, LeagueCode: "2860Y8OCF", UsesGamesheet: false},
	{Name: "Softball U12 Girls", Term: Spring, LeagueCode: "2860YFJVS", UsesGamesheet: false},
	{Name: "Tennis Sr Girls", Term: Spring, LeagueCode: "2860Y8PJD", UsesGamesheet: false},
	{Name: "Tennis Jr Girls", Term: Spring, LeagueCode: "2860Y8PKR", UsesGamesheet: false},
	{Name: "Tennis U14 Girls Doubles", Term: Spring, LeagueCode: "2860Y8PLT", UsesGamesheet: false},
	{Name: "Tennis U13 Girls", Term: Spring, LeagueCode: "2860Y8PMN", UsesGamesheet: false},
	{Name: "Badminton Sr Coed", Term: Spring, LeagueCode: "2860Y8PYD", UsesGamesheet: false},
	{Name: "Badminton Jr Coed", Term: Spring, LeagueCode: "2860Y8PZR", UsesGamesheet: false},
	{Name: "Badminton U14 Coed", Term: Spring, LeagueCode: "2860Y8Q0X", UsesGamesheet: false},
	{Name: "Track & Field HS Coed", Term: Spring, LeagueCode: "2AD0KGHQA", UsesGamesheet: false},
	{Name: "Track & Field ELE Coed", Term: Spring, LeagueCode: "2AD0KIP95", UsesGamesheet: false},
	{Name: "Ultimate Frisbee SR DI", Term: Spring, LeagueCode: "2DR0EO85A", UsesGamesheet: false},
	{Name: "Ultimate Frisbee SR DII", Term: Spring, LeagueCode: "2WO19VYCD", UsesGamesheet: false},
	{Name: "Ultimate Frisbee SR DIII", Term: Spring, LeagueCode: "6JH1DBQR7", UsesGamesheet: false},
	{Name: "Ultimate Frisbee Jr DI", Term: Spring, LeagueCode: "4JI0LHHYU", UsesGamesheet: false},
	{Name: "Ultimate Frisbee Jr DII", Term: Spring, LeagueCode: "6VG13HJP3", UsesGamesheet: false},
	{Name: "Ultimate Frisbee U14 Coed DI", Term: Spring, LeagueCode: "6JH1C3LFN", UsesGamesheet: false},
	{Name: "Ultimate Frisbee U14 Coed DII", Term: Spring, LeagueCode: "6JH1C8K13", UsesGamesheet: false},
	{Name: "Ultimate Frisbee U12 Coed", Term: Spring, LeagueCode: "69K0HJNPP", UsesGamesheet: false},
}
