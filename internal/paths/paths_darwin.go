package paths

const appDirName = "Avrora"
