package main

// usageText returns the fixed multi-line help string shown on
// argument-parse failures. It takes no input and never changes at runtime.
func usageText() string {
	return "pslaunch Usage:\n\n" +
		"  pslaunch -Script <script_path> [parameters]\n\n" +
		"Examples:\n" +
		"  pslaunch -Script test.ps1\n" +
		"  pslaunch -Script test.ps1 -FilePath \"C:\\temp\\test.txt\"\n" +
		"  pslaunch -Script test.ps1 -FileList \"file1.txt,file2.txt\"\n" +
		"  pslaunch -Script test.ps1 -Name \"John Doe\" -Verbose\n\n" +
		"Notes:\n" +
		"  - Parameters with spaces must be quoted\n" +
		"  - Array parameters should be comma-separated within quotes\n" +
		"  - Parameters containing ; & | < > ` $ ( ) { } [ ] are rejected\n" +
		"  - Returns 0 for success, 1 for errors or if no script specified"
}
